package main

import (
	"fmt"

	"github.com/fwojciec/giftlist"
)

// Run executes the alternatives command.
func (c *AlternativesCmd) Run(deps *Dependencies) error {
	gift, err := deps.Gifts.FindGiftByPosition(deps.Ctx, c.Position)
	if err != nil {
		return fail(deps, err)
	}

	products, err := deps.Lookup.Alternatives(deps.Ctx, searchTerm(gift), c.Max)
	if err != nil {
		return fail(deps, err)
	}

	if len(products) == 0 {
		fmt.Fprintf(deps.Stdout, "No alternatives found for %q\n", searchTerm(gift))
		return nil
	}

	printAlternatives(deps.Stdout, products)
	fmt.Fprintf(deps.Stdout, "Use 'giftlist replace %d K' to pick one.\n", c.Position)
	return nil
}

// searchTerm is the query alternatives are searched for. Gifts imported
// without a query fall back to their name.
func searchTerm(g *giftlist.Gift) string {
	if g.Query != "" {
		return g.Query
	}
	return g.Name
}
