package giftlist

// DefaultMaxAlternatives is the number of alternatives returned when the
// caller does not ask for a specific count.
const DefaultMaxAlternatives = 5

// Product is a normalized record extracted from one listing card.
//
// Optional fields are empty when absent. Price holds digits only.
// PurchaseURL and ImageURL are absolute once present.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	PurchaseURL string `json:"purchaseUrl,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// Query is the search term that produced this record.
	Query string `json:"query,omitempty"`
}

// HasPrice reports whether a price was extracted.
func (p *Product) HasPrice() bool {
	return p.Price != ""
}

// ProductExtractor turns rendered marketplace markup into product records.
// Implementations are pure functions of their inputs and perform no I/O.
type ProductExtractor interface {
	// ExtractProduct locates the primary listing card on a search page and
	// extracts its fields. The name falls back to query when no strategy
	// finds one. Returns ENOTFOUND if the page has no recognizable card.
	ExtractProduct(html string, query string) (*Product, error)

	// ExtractAlternatives extracts up to max candidate records in document
	// order. Cards without a name are dropped. An empty result is not an error.
	ExtractAlternatives(html string, query string, max int) ([]*Product, error)

	// ExtractPrice extracts a digit-only price from a product detail page.
	// Returns an empty string if no price can be found.
	ExtractPrice(html string) (string, error)
}
