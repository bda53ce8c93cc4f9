package specification

// Filter returns the elements of items satisfied by spec, in their original
// relative order. The input slice and its elements are never modified; the
// result is a newly allocated slice.
func Filter[T any](items []T, spec Specification[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if spec.IsSatisfiedBy(item) {
			result = append(result, item)
		}
	}
	return result
}
