package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/giftlist"
)

// Run executes the comment command. Empty text clears the comment.
func (c *CommentCmd) Run(deps *Dependencies) error {
	gift, err := deps.Gifts.FindGiftByPosition(deps.Ctx, c.Position)
	if err != nil {
		return fail(deps, err)
	}

	text := strings.TrimSpace(c.Text)
	if _, err := deps.Gifts.UpdateGift(deps.Ctx, gift.ID, giftlist.GiftUpdate{Comment: &text}); err != nil {
		return fail(deps, err)
	}

	if text == "" {
		fmt.Fprintf(deps.Stdout, "Cleared comment on %d. %s\n", c.Position, gift.Name)
	} else {
		fmt.Fprintf(deps.Stdout, "Commented on %d. %s\n", c.Position, gift.Name)
	}
	return nil
}
