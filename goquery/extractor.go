package goquery

import (
	"log/slog"

	"github.com/fwojciec/giftlist"
)

// Ensure Extractor implements giftlist.ProductExtractor at compile time.
var _ giftlist.ProductExtractor = (*Extractor)(nil)

// Extractor extracts product records from marketplace markup.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a logger that receives a debug record per card naming
// the strategy that resolved each field. Defaults to discarding records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractProduct locates the primary card and extracts its fields.
// The name falls back to query when no name strategy matches.
func (e *Extractor) ExtractProduct(html string, query string) (*giftlist.Product, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	card, cardStrategy, err := LocatePrimaryCard(doc.Selection)
	if err != nil {
		e.logger.Debug("card not found", "query", query)
		return nil, err
	}

	f := ExtractFields(card, query)
	e.trace(query, cardStrategy, f)

	name := f.Name
	if name == "" {
		name = query
	}

	return &giftlist.Product{
		Name:        name,
		Price:       f.Price,
		PurchaseURL: f.PurchaseURL,
		ImageURL:    f.ImageURL,
		Query:       query,
	}, nil
}

// ExtractAlternatives extracts up to max records in card order.
// Cards for which no name strategy matches are dropped.
func (e *Extractor) ExtractAlternatives(html string, query string, max int) ([]*giftlist.Product, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	cards := LocateAllCards(doc.Selection, max)
	products := make([]*giftlist.Product, 0, len(cards))
	for i, card := range cards {
		f := ExtractFields(card, query)
		e.trace(query, "listing", f)
		if f.Name == "" {
			e.logger.Debug("card skipped", "query", query, "index", i, "url", f.PurchaseURL)
			continue
		}
		products = append(products, &giftlist.Product{
			Name:        f.Name,
			Price:       f.Price,
			PurchaseURL: f.PurchaseURL,
			ImageURL:    f.ImageURL,
			Query:       query,
		})
	}

	return products, nil
}

// ExtractPrice extracts the price from a product detail page.
func (e *Extractor) ExtractPrice(html string) (string, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return "", err
	}

	price, strategy := ExtractPagePrice(doc.Selection)
	e.logger.Debug("page price", "price", price, "strategy", strategy)
	return price, nil
}

func (e *Extractor) trace(query, card string, f Fields) {
	e.logger.Debug("card fields",
		"query", query,
		"card", card,
		"name", f.Name,
		"name_strategy", f.NameStrategy,
		"price", f.Price,
		"price_strategy", f.PriceStrategy,
		"url_strategy", f.URLStrategy,
		"has_image", f.ImageURL != "",
	)
}
