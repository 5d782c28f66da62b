package main

import (
	"fmt"
	"os"
)

// Run executes the inspect command. With --verbose the extractor logs the
// strategy behind every field.
func (c *InspectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fail(deps, err)
	}
	html := string(data)

	switch {
	case c.Product:
		price, err := deps.Extractor.ExtractPrice(html)
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stdout, "Price: %s\n", formatPrice(price))

	case c.Alternatives > 0:
		products, err := deps.Extractor.ExtractAlternatives(html, c.Query, c.Alternatives)
		if err != nil {
			return fail(deps, err)
		}
		if len(products) == 0 {
			fmt.Fprintln(deps.Stdout, "No named cards found")
			return nil
		}
		printAlternatives(deps.Stdout, products)

	default:
		p, err := deps.Extractor.ExtractProduct(html, c.Query)
		if err != nil {
			return fail(deps, err)
		}
		fmt.Fprintln(deps.Stdout, p.Name)
		printProduct(deps.Stdout, p)
	}

	return nil
}
