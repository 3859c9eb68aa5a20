// Package util provides stateless presentation helpers.
package util

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"strings"
)

// productImageRules map name keywords to stock photos. Checked in
// order; the first keyword contained in the name wins.
var productImageRules = []struct {
	keyword string
	url     string
}{
	{"laptop", "https://images.unsplash.com/photo-1531297484001-80022131f5a1"},
	{"smartphone", "https://images.unsplash.com/photo-1598327105666-5b89351aff97"},
	{"headphones", "https://images.unsplash.com/photo-1546435770-a3e426bf472b"},
	{"monitor", "https://images.unsplash.com/photo-1461749280684-dccba630e2f6"},
	{"keyboard", "https://images.unsplash.com/photo-1587829741301-dc798b83add3"},
	{"mouse", "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7"},
	{"tablet", "https://images.unsplash.com/photo-1473091534298-04dcbce3278c"},
}

// ProductImage resolves a displayable image reference for a product
// name: a known stock photo when a keyword matches, otherwise a
// synthesized initial glyph. Same name, same result.
func ProductImage(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range productImageRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.url
		}
	}
	return fallbackImage(name)
}

// fallbackImage renders the product's first letter over a pastel
// background as an SVG data URI. The hue is hashed from the name so
// repeated lookups agree.
func fallbackImage(name string) string {
	initial := "?"
	for _, r := range name {
		initial = strings.ToUpper(string(r))
		break
	}

	h := fnv.New32a()
	h.Write([]byte(name))
	hue := h.Sum32() % 360

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="0 0 200 200">`+
			`<rect width="200" height="200" fill="hsl(%d, 70%%, 80%%)"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" `+
			`font-family="Arial" font-size="100" font-weight="bold" fill="#FFFFFF">%s</text>`+
			`</svg>`,
		hue, initial,
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
