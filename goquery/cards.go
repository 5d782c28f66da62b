package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/giftlist"
)

// CardConfig defines a card selector with its label.
type CardConfig struct {
	Name     string
	Selector cascadia.Selector
}

var (
	organicCard = CardConfig{Name: "search-organic", Selector: cascadia.MustCompile(`article[data-auto="searchOrganic"]`)}
	itemCard    = CardConfig{Name: "zone-item", Selector: cascadia.MustCompile(`div[data-zone-name="item"]`)}
	snippetCard = CardConfig{Name: "snippet-card", Selector: cascadia.MustCompile(`div[class*="snippet-card"]`)}
	looseCard   = CardConfig{Name: "class-card", Selector: cascadia.MustCompile(classSelector([]string{"div"}, "card", "product", "item"))}
)

// PrimaryCardConfigs are tried in order when looking for a single result.
var PrimaryCardConfigs = []CardConfig{organicCard, itemCard, snippetCard, looseCard}

// ListingCardConfigs are tried in order when collecting alternatives.
var ListingCardConfigs = []CardConfig{organicCard, itemCard}

// LocatePrimaryCard returns the first card found by the highest-priority
// selector that matches anything, and the name of that selector.
// Returns ENOTFOUND when no selector matches.
func LocatePrimaryCard(root *goquery.Selection) (*goquery.Selection, string, error) {
	for _, config := range PrimaryCardConfigs {
		if card := root.FindMatcher(config.Selector).First(); card.Length() > 0 {
			return card, config.Name, nil
		}
	}
	return nil, "", giftlist.Errorf(giftlist.ENOTFOUND, "no product card found")
}

// LocateAllCards returns up to max cards in document order from the first
// listing selector that matches anything. A max of zero or less means
// giftlist.DefaultMaxAlternatives.
func LocateAllCards(root *goquery.Selection, max int) []*goquery.Selection {
	if max <= 0 {
		max = giftlist.DefaultMaxAlternatives
	}

	for _, config := range ListingCardConfigs {
		matches := root.FindMatcher(config.Selector)
		if matches.Length() == 0 {
			continue
		}

		cards := make([]*goquery.Selection, 0, min(max, matches.Length()))
		matches.EachWithBreak(func(_ int, card *goquery.Selection) bool {
			cards = append(cards, card)
			return len(cards) < max
		})
		return cards
	}
	return nil
}
