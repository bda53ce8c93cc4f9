package specification

// conjunction used to create a new specification that is the AND of any
// number of other specifications.
type conjunction[T any] struct {
	specs []Specification[T]
}

// Conjunction create a new specification satisfied iff every given
// specification is satisfied. With no specifications it is vacuously satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return &conjunction[T]{specs: specs}
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
