package svg

import (
	"strings"

	"golang.org/x/net/html"
)

// drawingElements survive body extraction; every other tag is dropped while
// its text content is kept.
var drawingElements = map[string]struct{}{
	"circle":   {},
	"ellipse":  {},
	"line":     {},
	"path":     {},
	"polygon":  {},
	"polyline": {},
	"rect":     {},
	"g":        {},
	"mask":     {},
	"defs":     {},
	"use":      {},
}

// stripTags returns markup with only drawing element tags left in place.
// Kept tags and text are copied byte for byte so the result can be located
// again inside the source markup. Comments, doctypes and processing
// instructions are removed.
func stripTags(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	b.Grow(len(markup))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// TagName lower-cases the token buffer in place.
			raw := append([]byte(nil), z.Raw()...)
			name, _ := z.TagName()
			if _, ok := drawingElements[string(name)]; ok {
				b.Write(raw)
			}
		}
	}
}
