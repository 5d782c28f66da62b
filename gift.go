package giftlist

import (
	"context"
	"time"
)

// Gift is a product stored in the gift list.
type Gift struct {
	ID       string `json:"id"`
	Position int    `json:"position"`

	Product

	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the gift contains invalid fields.
func (g *Gift) Validate() error {
	if g.Name == "" {
		return Errorf(EINVALID, "gift name required")
	}
	return nil
}

// GiftService represents a service for managing the gift list.
type GiftService interface {
	// CreateGift appends a gift to the end of the list.
	CreateGift(ctx context.Context, gift *Gift) error

	// FindGiftByID retrieves a gift by ID.
	// Returns ENOTFOUND if gift does not exist.
	FindGiftByID(ctx context.Context, id string) (*Gift, error)

	// FindGiftByPosition retrieves the gift at a 1-based list position.
	// Returns ENOTFOUND if the position is empty.
	FindGiftByPosition(ctx context.Context, position int) (*Gift, error)

	// FindGifts retrieves gifts matching the filter, ordered by position.
	FindGifts(ctx context.Context, filter GiftFilter) ([]*Gift, error)

	// UpdateGift updates an existing gift.
	// Returns ENOTFOUND if gift does not exist.
	UpdateGift(ctx context.Context, id string, upd GiftUpdate) (*Gift, error)

	// DeleteGift permanently removes a gift and closes the gap in positions.
	// Returns ENOTFOUND if gift does not exist.
	DeleteGift(ctx context.Context, id string) error
}

// GiftFilter represents a filter for FindGifts.
type GiftFilter struct {
	ID    *string `json:"id"`
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// GiftUpdate represents fields that can be updated on a gift.
type GiftUpdate struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	PurchaseURL *string `json:"purchaseUrl"`
	ImageURL    *string `json:"imageUrl"`
	Query       *string `json:"query"`
	Comment     *string `json:"comment"`
}

// ReplaceWith returns an update that swaps the gift's product fields for p.
// The comment is left untouched.
func ReplaceWith(p *Product) GiftUpdate {
	return GiftUpdate{
		Name:        &p.Name,
		Price:       &p.Price,
		PurchaseURL: &p.PurchaseURL,
		ImageURL:    &p.ImageURL,
		Query:       &p.Query,
	}
}
