package catalog

import (
	"github.com/go-leo/gox/slicex"
)

// Color of a product. The enumeration is closed.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Size of a product. The enumeration is closed.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Huge
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case Huge:
		return "huge"
	}
	return "unknown"
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Product is an item in the catalog. Products are plain immutable values;
// a catalog is just an ordered slice of them.
type Product struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Size  Size   `json:"size"`
}

// Names projects a sequence of products onto their names, in order.
func Names(products []Product) []string {
	return slicex.Map[[]Product, []string](products, func(_ int, product Product) string {
		return product.Name
	})
}
