package catalog

import (
	"github.com/go-solid/openclosed/specification"
)

// ColorSpecification is satisfied by products of one color.
type ColorSpecification struct {
	color Color
}

func NewColorSpecification(color Color) *ColorSpecification {
	return &ColorSpecification{color: color}
}

func (spec *ColorSpecification) IsSatisfiedBy(product Product) bool {
	return product.Color == spec.color
}

// SizeSpecification is satisfied by products of one size.
type SizeSpecification struct {
	size Size
}

func NewSizeSpecification(size Size) *SizeSpecification {
	return &SizeSpecification{size: size}
}

func (spec *SizeSpecification) IsSatisfiedBy(product Product) bool {
	return product.Size == spec.size
}

var (
	_ specification.Specification[Product] = (*ColorSpecification)(nil)
	_ specification.Specification[Product] = (*SizeSpecification)(nil)
)
