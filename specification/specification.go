package specification

// Specification interface.
// A specification is a reusable satisfaction check over a value of type T.
// Use New to build one from a predicate function, or implement the single
// method IsSatisfiedBy on your own type.
type Specification[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool
}

type specification[T any] struct {
	predicate func(t T) bool
}

func New[T any](predicate func(t T) bool) Specification[T] {
	return &specification[T]{predicate: predicate}
}

func (spec *specification[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate(t)
}
