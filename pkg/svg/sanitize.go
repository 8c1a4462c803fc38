package svg

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// svgNameCase restores the mixed case SVG names that the HTML tokenizer
// behind bluemonday lowercases. Standalone .svg documents are parsed as XML
// and need them verbatim.
var svgNameCase = strings.NewReplacer(
	"<clippath", "<clipPath",
	"</clippath>", "</clipPath>",
	` viewbox="`, ` viewBox="`,
	` clippathunits="`, ` clipPathUnits="`,
	` maskunits="`, ` maskUnits="`,
)

// Sanitize strips scripts, event handlers and non drawing elements from
// untrusted icon markup. The result is trimmed; an empty string means nothing
// usable survived.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return svgNameCase.Replace(strings.TrimSpace(iconSanitizer().Sanitize(trimmed)))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "mask", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path", "x", "y").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "fill-rule", "clip-rule", "stroke",
				"stroke-width", "stroke-linecap", "stroke-linejoin", "opacity",
				"transform", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id", "maskUnits", "x", "y", "width", "height").OnElements("mask")
		policy.AllowAttrs("id").OnElements("defs", "title", "desc")
		policy.AllowAttrs("id", "fill", "stroke", "transform", "mask", "clip-path").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
