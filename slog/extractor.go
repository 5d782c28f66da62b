// Package slog provides log/slog decorators for giftlist services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/giftlist"
)

// Ensure LoggingExtractor implements giftlist.ProductExtractor.
var _ giftlist.ProductExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ProductExtractor and logs the outcome of each call.
type LoggingExtractor struct {
	next   giftlist.ProductExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next giftlist.ProductExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractProduct logs the extracted name and whether a price was found.
func (e *LoggingExtractor) ExtractProduct(html string, query string) (p *giftlist.Product, err error) {
	defer func(begin time.Time) {
		attrs := []any{"query", query, "duration", time.Since(begin)}
		if p != nil {
			attrs = append(attrs, "name", p.Name, "price", p.Price, "has_url", p.PurchaseURL != "")
		}
		if err != nil {
			attrs = append(attrs, "code", giftlist.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract product", attrs...)
	}(time.Now())
	return e.next.ExtractProduct(html, query)
}

// ExtractAlternatives logs how many candidates were kept.
func (e *LoggingExtractor) ExtractAlternatives(html string, query string, max int) (products []*giftlist.Product, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract alternatives",
			"query", query,
			"max", max,
			"count", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractAlternatives(html, query, max)
}

// ExtractPrice logs the product page price.
func (e *LoggingExtractor) ExtractPrice(html string) (price string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract price",
			"price", price,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPrice(html)
}
