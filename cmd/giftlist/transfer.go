package main

import (
	"fmt"

	"github.com/fwojciec/giftlist"
	"github.com/fwojciec/giftlist/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	gifts, err := deps.Gifts.FindGifts(deps.Ctx, giftlist.GiftFilter{})
	if err != nil {
		return fail(deps, err)
	}

	if err := fs.WriteGifts(c.Path, gifts); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d gifts to %s\n", len(gifts), c.Path)
	return nil
}

// Run executes the import command. Imported gifts are appended in file order.
func (c *ImportCmd) Run(deps *Dependencies) error {
	gifts, err := fs.ReadGifts(c.Path)
	if err != nil {
		return fail(deps, err)
	}

	if c.Replace {
		existing, err := deps.Gifts.FindGifts(deps.Ctx, giftlist.GiftFilter{})
		if err != nil {
			return fail(deps, err)
		}
		for _, g := range existing {
			if err := deps.Gifts.DeleteGift(deps.Ctx, g.ID); err != nil {
				return fail(deps, err)
			}
		}
	}

	for _, g := range gifts {
		if err := deps.Gifts.CreateGift(deps.Ctx, g); err != nil {
			return fail(deps, err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d gifts from %s\n", len(gifts), c.Path)
	return nil
}
