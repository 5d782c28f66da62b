package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/giftlist"
)

// formatPrice renders a digit-only price with thousands separators.
func formatPrice(price string) string {
	if price == "" {
		return "N/A"
	}
	n, err := strconv.Atoi(price)
	if err != nil {
		return price + " ₽"
	}

	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₽")
	return b.String()
}

func printProduct(w io.Writer, p *giftlist.Product) {
	fmt.Fprintf(w, "  Price: %s\n", formatPrice(p.Price))
	if p.PurchaseURL != "" {
		fmt.Fprintf(w, "  URL:   %s\n", p.PurchaseURL)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(w, "  Image: %s\n", p.ImageURL)
	}
}

func printGift(w io.Writer, g *giftlist.Gift) {
	fmt.Fprintf(w, "%d. %s\n", g.Position, g.Name)
	printProduct(w, &g.Product)
	if g.Comment != "" {
		fmt.Fprintf(w, "  Note:  %s\n", g.Comment)
	}
}

func printAlternatives(w io.Writer, products []*giftlist.Product) {
	for i, p := range products {
		fmt.Fprintf(w, "%d) %s\n", i+1, p.Name)
		printProduct(w, p)
	}
}

// fail prints the user-facing message for err and returns err.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", giftlist.ErrorMessage(err))
	return err
}
