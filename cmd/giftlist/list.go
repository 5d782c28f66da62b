package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/giftlist"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	gifts, err := deps.Gifts.FindGifts(deps.Ctx, giftlist.GiftFilter{})
	if err != nil {
		return fail(deps, err)
	}

	if len(gifts) == 0 {
		fmt.Fprintln(deps.Stdout, "The gift list is empty. Use 'giftlist add' to add ideas.")
		return nil
	}

	total := 0
	for _, g := range gifts {
		printGift(deps.Stdout, g)
		if n, err := strconv.Atoi(g.Price); err == nil {
			total += n
		}
	}
	fmt.Fprintf(deps.Stdout, "Total: %s\n", formatPrice(strconv.Itoa(total)))

	return nil
}
