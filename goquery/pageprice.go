package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var pagePriceClass = cascadia.MustCompile(`[class*="price"]`)

// PagePriceStrategies is the element part of the product page price cascade.
// The flattened-text scan in ExtractPagePrice runs after all of them fail.
var PagePriceStrategies = []Strategy{
	{Name: "price-value", Match: func(page *goquery.Selection, _ string) string {
		return firstText(page, elementText, priceValueSpan, priceValueDiv)
	}},
	{Name: "class-price", Match: func(page *goquery.Selection, _ string) string {
		return firstText(page, elementText, pagePriceClass)
	}},
}

// pageTextPrice matches "2 500 ₽" or "Цена: 2500" in flattened page text.
// Group 1 holds the ruble-suffixed amount, group 2 the prefixed one.
var pageTextPrice = regexp.MustCompile(
	`(\d(?:[ \t\x{00A0}\x{202F}\x{2009}]*\d)*)[\s\x{00A0}\x{202F}]*₽` +
		`|(?i:price|цена)[\s\x{00A0}]*:?[\s\x{00A0}]*(\d(?:[ \t\x{00A0}\x{202F}\x{2009}]*\d)*)`)

// ExtractPagePrice returns the digit-only price of a product detail page
// and the name of the step that found it. Element strategies are tried
// first; a match without digits falls through to the next step.
// Both values are empty when nothing matches.
func ExtractPagePrice(page *goquery.Selection) (price, strategy string) {
	for _, s := range PagePriceStrategies {
		if v := digitsOnly(s.Match(page, "")); v != "" {
			return v, s.Name
		}
	}

	m := pageTextPrice.FindStringSubmatch(flattenText(page))
	if m == nil {
		return "", ""
	}
	amount := m[1]
	if amount == "" {
		amount = m[2]
	}
	if v := digitsOnly(amount); v != "" {
		return v, "text-scan"
	}
	return "", ""
}

// flattenText joins the page's text nodes with newlines, skipping script,
// style and template contents.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
