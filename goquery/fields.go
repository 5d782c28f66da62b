package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// minScannedNameLen is the rune count a scanned text must exceed to be
// accepted as a product name.
const minScannedNameLen = 5

var (
	titleZone      = cascadia.MustCompile(`[data-zone-name="title"]`)
	snippetTitle   = cascadia.MustCompile(`h3[data-auto="snippet-title"]`)
	titleLink      = cascadia.MustCompile(`a[data-zone-name="title"]`)
	titleLinkInner = cascadia.MustCompile(`h3, h4, h5, span, div`)
	classTitle     = cascadia.MustCompile(classSelector(
		[]string{"h1", "h2", "h3", "h4", "h5", "span", "div"}, "title", "name", "product"))
	classLinkTitle = cascadia.MustCompile(`span[class*="link"][class*="title"], div[class*="link"][class*="title"]`)
	textBearing    = cascadia.MustCompile(`span, div, a, h1, h2, h3, h4, h5`)

	priceValueSpan = cascadia.MustCompile(`span[data-auto="price-value"]`)
	priceValueDiv  = cascadia.MustCompile(`div[data-auto="price-value"]`)
	classPriceSpan = cascadia.MustCompile(`span[class*="price"]`)
	classPriceDiv  = cascadia.MustCompile(`div[class*="price"]`)
	priceLike      = cascadia.MustCompile(classSelector([]string{"span", "div"}, "price", "cost", "value"))

	titleAnchor   = cascadia.MustCompile(`a[data-zone-name="title"][href]`)
	productAnchor = cascadia.MustCompile(`a[href*="/product/"]`)
	classAnchor   = cascadia.MustCompile(`a[class*="link"][href]`)
	uidAnchor     = cascadia.MustCompile(`a[data-uid][href]`)
	anyAnchor     = cascadia.MustCompile(`a[href]`)

	imageSource = cascadia.MustCompile(`img[src]`)
)

// NameStrategies is the name cascade, most specific first.
var NameStrategies = []Strategy{
	{Name: "title-zone", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, nameText, titleZone)
	}},
	{Name: "snippet-title", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, nameText, snippetTitle)
	}},
	{Name: "title-link", Match: matchTitleLink},
	{Name: "class-title", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, nameText, classTitle)
	}},
	{Name: "class-link-title", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, nameText, classLinkTitle)
	}},
	{Name: "text-scan", Match: scanName},
}

// PriceStrategies is the price cascade. Matches are raw element texts;
// ExtractFields reduces the winner to digits.
var PriceStrategies = []Strategy{
	{Name: "price-value", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, elementText, priceValueSpan, priceValueDiv)
	}},
	{Name: "class-price", Match: func(card *goquery.Selection, _ string) string {
		return firstText(card, elementText, classPriceSpan, classPriceDiv)
	}},
	{Name: "price-scan", Match: scanPrice},
}

// URLStrategies is the purchase link cascade. Matches are raw href values.
var URLStrategies = []Strategy{
	{Name: "title-link", Match: hrefOf(titleAnchor)},
	{Name: "product-path", Match: hrefOf(productAnchor)},
	{Name: "class-link", Match: hrefOf(classAnchor)},
	{Name: "data-uid", Match: hrefOf(uidAnchor)},
	{Name: "any-link", Match: hrefOf(anyAnchor)},
}

// Fields holds the values resolved from one card and the strategies that
// produced them. Empty values mean the field was not found.
type Fields struct {
	Name        string
	Price       string
	PurchaseURL string
	ImageURL    string

	NameStrategy  string
	PriceStrategy string
	URLStrategy   string
}

// ExtractFields resolves every field of card independently.
// The name is empty when every name strategy fails; the caller decides
// whether to fall back to the query or drop the card.
func ExtractFields(card *goquery.Selection, query string) Fields {
	var f Fields

	f.Name, f.NameStrategy = Resolve(card, query, NameStrategies)

	var rawPrice string
	rawPrice, f.PriceStrategy = Resolve(card, query, PriceStrategies)
	f.Price = digitsOnly(rawPrice)

	var href string
	href, f.URLStrategy = Resolve(card, query, URLStrategies)
	f.PurchaseURL = AbsoluteURL(href)

	f.ImageURL = AbsoluteImageURL(firstAttr(card, imageSource, "src"))

	return f
}

// nameText is elementText with trailing punctuation trimmed.
func nameText(sel *goquery.Selection) string {
	return trimName(elementText(sel))
}

// matchTitleLink prefers a heading or text element nested in the title
// link and falls back to the link's own text.
func matchTitleLink(card *goquery.Selection, _ string) string {
	link := card.FindMatcher(titleLink).First()
	if link.Length() == 0 {
		return ""
	}
	if inner := link.FindMatcher(titleLinkInner).First(); inner.Length() > 0 {
		return nameText(inner)
	}
	return nameText(link)
}

// scanName accepts the first text-bearing element whose text is long
// enough, is not a bare link, and is not the search query echoed back.
// The query comparison is exact on purpose.
func scanName(card *goquery.Selection, query string) string {
	var name string
	card.FindMatcher(textBearing).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := elementText(sel)
		if utf8.RuneCountInString(text) <= minScannedNameLen ||
			strings.HasPrefix(text, "https") ||
			text == query {
			return true
		}
		name = trimName(text)
		return name == ""
	})
	return name
}

// scanPrice accepts the first price-like element whose text has a digit.
func scanPrice(card *goquery.Selection, _ string) string {
	var price string
	card.FindMatcher(priceLike).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if text := elementText(sel); hasDigit(text) {
			price = text
			return false
		}
		return true
	})
	return price
}

func hrefOf(m cascadia.Selector) func(*goquery.Selection, string) string {
	return func(card *goquery.Selection, _ string) string {
		return strings.TrimSpace(firstAttr(card, m, "href"))
	}
}
