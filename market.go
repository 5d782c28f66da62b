package giftlist

import (
	"net/url"
	"strings"
)

// MarketOrigin is the canonical scheme and host of the marketplace.
// Relative links found on its pages are resolved against it.
const MarketOrigin = "https://market.yandex.ru"

// SearchURL returns the marketplace search page URL for query.
// A query that is already an http(s) URL is returned unchanged so that
// callers can point a lookup at a specific page.
func SearchURL(query string) string {
	query = strings.TrimSpace(query)
	if IsPageURL(query) {
		return query
	}
	return MarketOrigin + "/search?" + url.Values{"text": {query}}.Encode()
}

// IsPageURL reports whether s is an absolute http(s) URL.
func IsPageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Host returns the host part of rawURL, or an empty string if it cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
