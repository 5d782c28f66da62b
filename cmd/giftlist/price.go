package main

import (
	"fmt"

	"github.com/fwojciec/giftlist"
)

// Run executes the price command.
func (c *PriceCmd) Run(deps *Dependencies) error {
	gift, err := deps.Gifts.FindGiftByPosition(deps.Ctx, c.Position)
	if err != nil {
		return fail(deps, err)
	}

	if gift.HasPrice() {
		fmt.Fprintf(deps.Stdout, "%d. %s already has a price: %s\n", c.Position, gift.Name, formatPrice(gift.Price))
		return nil
	}

	p, err := deps.Lookup.BackfillPrice(deps.Ctx, &gift.Product)
	if err != nil {
		return fail(deps, err)
	}
	if !p.HasPrice() {
		fmt.Fprintf(deps.Stdout, "No price found for %d. %s\n", c.Position, gift.Name)
		return nil
	}

	updated, err := deps.Gifts.UpdateGift(deps.Ctx, gift.ID, giftlist.GiftUpdate{
		Price:       &p.Price,
		PurchaseURL: &p.PurchaseURL,
		ImageURL:    &p.ImageURL,
	})
	if err != nil {
		return fail(deps, err)
	}

	printGift(deps.Stdout, updated)
	return nil
}
