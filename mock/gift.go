package mock

import (
	"context"

	"github.com/fwojciec/giftlist"
)

var _ giftlist.GiftService = (*GiftService)(nil)

// GiftService is a mock implementation of giftlist.GiftService.
type GiftService struct {
	CreateGiftFn         func(ctx context.Context, gift *giftlist.Gift) error
	FindGiftByIDFn       func(ctx context.Context, id string) (*giftlist.Gift, error)
	FindGiftByPositionFn func(ctx context.Context, position int) (*giftlist.Gift, error)
	FindGiftsFn          func(ctx context.Context, filter giftlist.GiftFilter) ([]*giftlist.Gift, error)
	UpdateGiftFn         func(ctx context.Context, id string, upd giftlist.GiftUpdate) (*giftlist.Gift, error)
	DeleteGiftFn         func(ctx context.Context, id string) error
}

func (s *GiftService) CreateGift(ctx context.Context, gift *giftlist.Gift) error {
	return s.CreateGiftFn(ctx, gift)
}

func (s *GiftService) FindGiftByID(ctx context.Context, id string) (*giftlist.Gift, error) {
	return s.FindGiftByIDFn(ctx, id)
}

func (s *GiftService) FindGiftByPosition(ctx context.Context, position int) (*giftlist.Gift, error) {
	return s.FindGiftByPositionFn(ctx, position)
}

func (s *GiftService) FindGifts(ctx context.Context, filter giftlist.GiftFilter) ([]*giftlist.Gift, error) {
	return s.FindGiftsFn(ctx, filter)
}

func (s *GiftService) UpdateGift(ctx context.Context, id string, upd giftlist.GiftUpdate) (*giftlist.Gift, error) {
	return s.UpdateGiftFn(ctx, id, upd)
}

func (s *GiftService) DeleteGift(ctx context.Context, id string) error {
	return s.DeleteGiftFn(ctx, id)
}
