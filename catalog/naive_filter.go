package catalog

// NaiveFilter filters products with one method per query shape. Every new
// query dimension forces a new method and another copy of the same loop,
// violating the open-closed principle. It is kept as the before-picture for
// the specification-based filter; do not extend it.
type NaiveFilter struct{}

// ByColor returns the products with the given color, in input order.
func (f NaiveFilter) ByColor(products []Product, color Color) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		if product.Color == color {
			result = append(result, product)
		}
	}
	return result
}

// BySize returns the products with the given size, in input order.
func (f NaiveFilter) BySize(products []Product, size Size) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		if product.Size == size {
			result = append(result, product)
		}
	}
	return result
}

// BySizeAndColor returns the products with the given size and color, in input order.
func (f NaiveFilter) BySizeAndColor(products []Product, size Size, color Color) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		if product.Size == size && product.Color == color {
			result = append(result, product)
		}
	}
	return result
}
