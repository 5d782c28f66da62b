// Package giftlist builds a gift list from free-text ideas by looking each
// idea up on a marketplace search page and extracting a normalized product
// record (name, price, purchase URL, image URL).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package giftlist
