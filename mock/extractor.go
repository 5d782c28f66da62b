package mock

import "github.com/fwojciec/giftlist"

var _ giftlist.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of giftlist.ProductExtractor.
type ProductExtractor struct {
	ExtractProductFn      func(html, query string) (*giftlist.Product, error)
	ExtractAlternativesFn func(html, query string, max int) ([]*giftlist.Product, error)
	ExtractPriceFn        func(html string) (string, error)
}

func (e *ProductExtractor) ExtractProduct(html, query string) (*giftlist.Product, error) {
	return e.ExtractProductFn(html, query)
}

func (e *ProductExtractor) ExtractAlternatives(html, query string, max int) ([]*giftlist.Product, error) {
	return e.ExtractAlternativesFn(html, query, max)
}

func (e *ProductExtractor) ExtractPrice(html string) (string, error) {
	return e.ExtractPriceFn(html)
}
