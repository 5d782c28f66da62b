// Package goquery implements giftlist.ProductExtractor on top of goquery.
//
// Extraction is organised as ordered cascades of named strategies. Stable
// semantic markers (data-zone-name, data-auto) are tried first, followed by
// looser class-name heuristics and finally plain text scanning.
package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/giftlist"
)

// ParseHTML parses markup into a queryable document.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, giftlist.Errorf(giftlist.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// elementText returns the text of sel with whitespace runs collapsed to a
// single space and the ends trimmed.
func elementText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// trimName removes trailing runs of commas, periods, dashes and whitespace.
func trimName(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == ',' || r == '.' || r == '-' || unicode.IsSpace(r)
	})
}

// digitsOnly deletes every character that is not an ASCII digit.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hasDigit reports whether s contains an ASCII digit.
func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// AbsoluteURL rewrites a link found on a marketplace page into an absolute URL.
// Protocol-relative links get an https scheme, root-relative paths are
// resolved against giftlist.MarketOrigin, anything else is returned as is.
func AbsoluteURL(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return giftlist.MarketOrigin + href
	}
	return href
}

// AbsoluteImageURL gives protocol-relative image sources an https scheme.
func AbsoluteImageURL(src string) string {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// classSelector builds a selector group matching any of tags whose class
// attribute contains any of subs.
func classSelector(tags []string, subs ...string) string {
	parts := make([]string, 0, len(tags)*len(subs))
	for _, tag := range tags {
		for _, sub := range subs {
			parts = append(parts, tag+`[class*="`+sub+`"]`)
		}
	}
	return strings.Join(parts, ", ")
}
