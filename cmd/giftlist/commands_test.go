package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/giftlist"
	main "github.com/fwojciec/giftlist/cmd/giftlist"
	"github.com/fwojciec/giftlist/lookup"
	"github.com/fwojciec/giftlist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports skipped queries and saves the rest", func(t *testing.T) {
		t.Parallel()

		var created []*giftlist.Gift
		gifts := &mock.GiftService{
			CreateGiftFn: func(_ context.Context, g *giftlist.Gift) error {
				g.Position = len(created) + 1
				created = append(created, g)
				return nil
			},
		}
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://market.yandex.ru/search?text=broken" {
						return "", errors.New("net::ERR_CONNECTION_RESET")
					}
					return url, nil
				},
			},
			Extractor: &mock.ProductExtractor{
				ExtractProductFn: func(_, query string) (*giftlist.Product, error) {
					if query == "nothing" {
						return nil, giftlist.Errorf(giftlist.ENOTFOUND, "no product card found")
					}
					return &giftlist.Product{Name: "Product " + query, Price: "100", Query: query}, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Gifts:  gifts,
			Lookup: svc,
		}

		cmd := &main.AddCmd{Queries: []string{"mug", "nothing", "broken", "lamp"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, "Product mug", created[0].Name)
		assert.Equal(t, "lamp", created[1].Query)
		assert.Contains(t, stderr.String(), `[2/4] Nothing found for "nothing"`)
		assert.Contains(t, stderr.String(), `[3/4] Failed "broken"`)
		assert.Contains(t, stdout.String(), "Added 2 of 4 gift ideas")
		assert.Contains(t, stdout.String(), "Price: 100 ₽")
	})

	t.Run("saves what was found before cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		created := 0
		gifts := &mock.GiftService{
			CreateGiftFn: func(_ context.Context, _ *giftlist.Gift) error {
				created++
				return nil
			},
		}
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					cancel()
					return "page", nil
				},
			},
			Extractor: &mock.ProductExtractor{
				ExtractProductFn: func(_, query string) (*giftlist.Product, error) {
					return &giftlist.Product{Name: query, Query: query}, nil
				},
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    ctx,
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Gifts:  gifts,
			Lookup: svc,
		}

		cmd := &main.AddCmd{Queries: []string{"a", "b"}}
		err := cmd.Run(deps)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, created)
		assert.Contains(t, stderr.String(), "stopped after 1 of 2")
	})
}

func TestPriceCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores a backfilled price", func(t *testing.T) {
		t.Parallel()

		var upd giftlist.GiftUpdate
		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, position int) (*giftlist.Gift, error) {
				return &giftlist.Gift{ID: "g1", Position: position, Product: giftlist.Product{
					Name:        "Mug",
					PurchaseURL: "https://market.yandex.ru/product/1",
				}}, nil
			},
			UpdateGiftFn: func(_ context.Context, id string, u giftlist.GiftUpdate) (*giftlist.Gift, error) {
				assert.Equal(t, "g1", id)
				upd = u
				return &giftlist.Gift{ID: id, Position: 3, Product: giftlist.Product{Name: "Mug", Price: *u.Price}}, nil
			},
		}
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<product>", nil
				},
			},
			Extractor: &mock.ProductExtractor{
				ExtractPriceFn: func(_ string) (string, error) {
					return "12990", nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Gifts:  gifts,
			Lookup: svc,
		}

		err := (&main.PriceCmd{Position: 3}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, upd.Price)
		assert.Equal(t, "12990", *upd.Price)
		assert.Nil(t, upd.Name)
		assert.Nil(t, upd.Comment)
		assert.Contains(t, stdout.String(), "3. Mug")
		assert.Contains(t, stdout.String(), "Price: 12 990 ₽")
	})

	t.Run("skips gifts that already have a price", func(t *testing.T) {
		t.Parallel()

		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, _ int) (*giftlist.Gift, error) {
				return &giftlist.Gift{ID: "g1", Position: 1, Product: giftlist.Product{Name: "Mug", Price: "1000"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Gifts:  gifts,
		}

		err := (&main.PriceCmd{Position: 1}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "already has a price: 1 000 ₽")
	})

	t.Run("leaves the gift alone when no price is found", func(t *testing.T) {
		t.Parallel()

		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, _ int) (*giftlist.Gift, error) {
				return &giftlist.Gift{ID: "g1", Position: 1, Product: giftlist.Product{Name: "Mug"}}, nil
			},
		}
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<search>", nil
				},
			},
			Extractor: &mock.ProductExtractor{
				ExtractProductFn: func(_, query string) (*giftlist.Product, error) {
					return &giftlist.Product{Name: query, Query: query}, nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Gifts:  gifts,
			Lookup: svc,
		}

		err := (&main.PriceCmd{Position: 1}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No price found for 1. Mug")
	})
}

func TestCommentCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("clears the comment when text is blank", func(t *testing.T) {
		t.Parallel()

		var comment *string
		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, _ int) (*giftlist.Gift, error) {
				return &giftlist.Gift{ID: "g1", Position: 2, Product: giftlist.Product{Name: "Mug"}, Comment: "old"}, nil
			},
			UpdateGiftFn: func(_ context.Context, _ string, u giftlist.GiftUpdate) (*giftlist.Gift, error) {
				comment = u.Comment
				return &giftlist.Gift{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Gifts:  gifts,
		}

		err := (&main.CommentCmd{Position: 2, Text: "  "}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Empty(t, *comment)
		assert.Contains(t, stdout.String(), "Cleared comment on 2. Mug")
	})

	t.Run("reports a missing gift", func(t *testing.T) {
		t.Parallel()

		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, _ int) (*giftlist.Gift, error) {
				return nil, giftlist.Errorf(giftlist.ENOTFOUND, "gift not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Gifts:  gifts,
		}

		err := (&main.CommentCmd{Position: 7, Text: "hi"}).Run(deps)

		assert.Equal(t, giftlist.ENOTFOUND, giftlist.ErrorCode(err))
		assert.Equal(t, "error: gift not found\n", stderr.String())
	})
}

func TestAlternativesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches by name when the gift has no query", func(t *testing.T) {
		t.Parallel()

		var fetched string
		gifts := &mock.GiftService{
			FindGiftByPositionFn: func(_ context.Context, _ int) (*giftlist.Gift, error) {
				return &giftlist.Gift{ID: "g1", Position: 1, Product: giftlist.Product{Name: "mug"}}, nil
			},
		}
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return "<search>", nil
				},
			},
			Extractor: &mock.ProductExtractor{
				ExtractAlternativesFn: func(_, _ string, _ int) ([]*giftlist.Product, error) {
					return []*giftlist.Product{}, nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Gifts:  gifts,
			Lookup: svc,
		}

		err := (&main.AlternativesCmd{Position: 1, Max: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://market.yandex.ru/search?text=mug", fetched)
		assert.Contains(t, stdout.String(), `No alternatives found for "mug"`)
	})
}
