package specification

// and used to create a new specification that is the AND of two other specifications.
type and[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// And create a new specification that is the AND operation of two
// specifications over the same type. Either side may itself be a combinator.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &and[T]{left: left, right: right}
}

func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) && spec.right.IsSatisfiedBy(t)
}
