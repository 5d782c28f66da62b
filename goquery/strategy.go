package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Strategy is one step of a field cascade. Match returns the raw value it
// found inside card, or an empty string when the step does not apply.
// The query is only consulted by strategies that must avoid echoing it.
type Strategy struct {
	Name  string
	Match func(card *goquery.Selection, query string) string
}

// Resolve runs strategies in order and returns the first non-empty value
// together with the name of the strategy that produced it.
// Both are empty if every strategy fails.
func Resolve(card *goquery.Selection, query string, strategies []Strategy) (value, strategy string) {
	for _, s := range strategies {
		if v := s.Match(card, query); v != "" {
			return v, s.Name
		}
	}
	return "", ""
}

// StrategyNames lists the names of strategies in priority order.
func StrategyNames(strategies []Strategy) []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name
	}
	return names
}

// firstText returns the text of the first element matched by the first
// matcher that yields a non-empty text.
func firstText(card *goquery.Selection, text func(*goquery.Selection) string, matchers ...cascadia.Selector) string {
	for _, m := range matchers {
		if v := text(card.FindMatcher(m).First()); v != "" {
			return v
		}
	}
	return ""
}

// firstAttr returns the first non-empty value of attr among elements matched by m.
func firstAttr(card *goquery.Selection, m cascadia.Selector, attr string) string {
	var value string
	card.FindMatcher(m).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		v, ok := sel.Attr(attr)
		if ok && strings.TrimSpace(v) != "" {
			value = v
			return false
		}
		return true
	})
	return value
}
