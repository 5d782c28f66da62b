// Package lookup turns search queries into product records.
// It fetches marketplace pages one at a time through a giftlist.Fetcher and
// hands the markup to a giftlist.ProductExtractor.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/giftlist"
)

// Service looks up products on the marketplace.
type Service struct {
	Fetcher   giftlist.Fetcher
	Extractor giftlist.ProductExtractor

	// Limiter, if set, is waited on before every page load.
	Limiter giftlist.DomainLimiter

	// Snapshots, if set, receives a copy of every fetched search page.
	Snapshots giftlist.SnapshotStore

	// RetryDelays overrides DefaultRetryDelays when non-nil.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// ProgressEvent reports progress during LookupAll.
type ProgressEvent struct {
	Type    ProgressType
	Index   int
	Total   int
	Query   string
	Product *giftlist.Product
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFound
	ProgressNotFound
	ProgressFailed
)

// ProgressFunc is a callback for reporting lookup progress.
type ProgressFunc func(event ProgressEvent)

// Lookup fetches the search page for query and extracts its primary product.
// A query that is already an http(s) URL is fetched as is.
// Returns ENOTFOUND if the page has no product card.
func (s *Service) Lookup(ctx context.Context, query string) (*giftlist.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, giftlist.Errorf(giftlist.EINVALID, "query required")
	}

	html, err := s.fetchSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.Extractor.ExtractProduct(html, query)
}

// LookupAll looks up queries strictly in order. Queries without a result
// and failed fetches are reported through progress and skipped; only
// context cancellation stops the loop. The returned products are in query
// order and exclude skipped queries.
func (s *Service) LookupAll(ctx context.Context, queries []string, progress ProgressFunc) ([]*giftlist.Product, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	total := len(queries)
	products := make([]*giftlist.Product, 0, total)
	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			return products, err
		}

		progress(ProgressEvent{Type: ProgressStarted, Index: i, Total: total, Query: query})

		p, err := s.Lookup(ctx, query)
		switch {
		case err == nil:
			products = append(products, p)
			progress(ProgressEvent{Type: ProgressFound, Index: i, Total: total, Query: query, Product: p})
		case isCanceled(err):
			return products, err
		case giftlist.ErrorCode(err) == giftlist.ENOTFOUND:
			progress(ProgressEvent{Type: ProgressNotFound, Index: i, Total: total, Query: query, Error: err})
		default:
			s.logger().Warn("lookup failed", "query", query, "error", err)
			progress(ProgressEvent{Type: ProgressFailed, Index: i, Total: total, Query: query, Error: err})
		}
	}

	return products, nil
}

// Alternatives fetches the search page for query and extracts up to max
// candidate products. A max of zero or less means the default.
func (s *Service) Alternatives(ctx context.Context, query string, max int) ([]*giftlist.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, giftlist.Errorf(giftlist.EINVALID, "query required")
	}
	if max <= 0 {
		max = giftlist.DefaultMaxAlternatives
	}

	html, err := s.fetchSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.Extractor.ExtractAlternatives(html, query, max)
}

// BackfillPrice returns a copy of p with the price filled in when possible.
// The product page is tried first, then a fresh lookup by name whose link
// and image replace the copy's when present. A price that stays missing is
// not an error. p itself is never modified.
func (s *Service) BackfillPrice(ctx context.Context, p *giftlist.Product) (*giftlist.Product, error) {
	out := *p
	if out.HasPrice() {
		return &out, nil
	}

	if giftlist.IsPageURL(out.PurchaseURL) {
		price, err := s.pagePrice(ctx, out.PurchaseURL)
		if isCanceled(err) {
			return nil, err
		} else if err != nil {
			s.logger().Warn("product page price failed", "url", out.PurchaseURL, "error", err)
		}
		if price != "" {
			out.Price = price
			return &out, nil
		}
	}

	if out.Name == "" {
		return &out, nil
	}

	found, err := s.Lookup(ctx, out.Name)
	if isCanceled(err) {
		return nil, err
	} else if err != nil {
		s.logger().Warn("price lookup by name failed", "name", out.Name, "error", err)
		return &out, nil
	}

	if found.PurchaseURL != "" {
		out.PurchaseURL = found.PurchaseURL
	}
	if found.ImageURL != "" {
		out.ImageURL = found.ImageURL
	}
	out.Price = found.Price

	return &out, nil
}

func (s *Service) pagePrice(ctx context.Context, url string) (string, error) {
	html, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Extractor.ExtractPrice(html)
}

// fetchSearch loads the search page for query and snapshots it.
func (s *Service) fetchSearch(ctx context.Context, query string) (string, error) {
	html, err := s.fetch(ctx, giftlist.SearchURL(query))
	if err != nil {
		return "", err
	}

	if s.Snapshots != nil {
		path, err := s.Snapshots.SaveSnapshot(ctx, query, html)
		if err != nil {
			s.logger().Warn("snapshot failed", "query", query, "error", err)
		} else {
			s.logger().Debug("snapshot saved", "query", query, "path", path)
		}
	}

	return html, nil
}

func (s *Service) fetch(ctx context.Context, url string) (string, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, giftlist.Host(url)); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, s.logger(), delays)
	if err != nil {
		if isCanceled(err) {
			return "", err
		}
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return html, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
