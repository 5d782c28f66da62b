package main

import (
	"fmt"

	"github.com/fwojciec/giftlist"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return fail(deps, giftlist.Errorf(giftlist.EINVALID, "use --force to confirm deletion"))
	}

	gift, err := deps.Gifts.FindGiftByPosition(deps.Ctx, c.Position)
	if err != nil {
		return fail(deps, err)
	}

	if err := deps.Gifts.DeleteGift(deps.Ctx, gift.ID); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d. %s\n", c.Position, gift.Name)
	return nil
}
