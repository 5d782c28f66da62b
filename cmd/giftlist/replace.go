package main

import (
	"fmt"

	"github.com/fwojciec/giftlist"
)

// Run executes the replace command. The alternatives are fetched again,
// so K refers to the current search results.
func (c *ReplaceCmd) Run(deps *Dependencies) error {
	gift, err := deps.Gifts.FindGiftByPosition(deps.Ctx, c.Position)
	if err != nil {
		return fail(deps, err)
	}

	products, err := deps.Lookup.Alternatives(deps.Ctx, searchTerm(gift), c.Max)
	if err != nil {
		return fail(deps, err)
	}
	if c.Alternative < 1 || c.Alternative > len(products) {
		return fail(deps, giftlist.Errorf(giftlist.EINVALID, "alternative %d out of range; %d available", c.Alternative, len(products)))
	}

	chosen, err := deps.Lookup.BackfillPrice(deps.Ctx, products[c.Alternative-1])
	if err != nil {
		return fail(deps, err)
	}

	updated, err := deps.Gifts.UpdateGift(deps.Ctx, gift.ID, giftlist.ReplaceWith(chosen))
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Replaced %q with:\n", gift.Name)
	printGift(deps.Stdout, updated)
	return nil
}
