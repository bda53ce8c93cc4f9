package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-solid/openclosed/catalog"
	"github.com/go-solid/openclosed/specification"
)

// The open-closed principle states that a type should be open for extension
// but closed for modification. NaiveFilter breaks it: every new query shape
// means editing the filter and adding yet another method. The specification
// pattern closes the filter instead: Filter is written once and new queries
// are expressed by composing small Specification values outside of it.
// This program runs the same queries through both filters over a fixed
// sample catalog and prints the matching names.
func main() {
	products := []catalog.Product{
		{Name: "apple", Color: catalog.Red, Size: catalog.Small},
		{Name: "watermelon", Color: catalog.Green, Size: catalog.Medium},
		{Name: "ferrari", Color: catalog.Red, Size: catalog.Large},
		{Name: "iris", Color: catalog.Blue, Size: catalog.Small},
	}

	data, err := jsoniter.MarshalIndent(products, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println("catalog:")
	fmt.Println(string(data))

	naive := catalog.NaiveFilter{}
	fmt.Println("red products (naive):", catalog.Names(naive.ByColor(products, catalog.Red)))

	red := catalog.NewColorSpecification(catalog.Red)
	small := catalog.NewSizeSpecification(catalog.Small)

	fmt.Println("red products:", catalog.Names(specification.Filter(products, red)))
	fmt.Println("small products:", catalog.Names(specification.Filter(products, small)))
	fmt.Println("small red products:", catalog.Names(specification.Filter(products, specification.And[catalog.Product](small, red))))
}
