package svg

import "testing"

func TestStripTagsKeepsDrawingElements(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "root wrapper removed",
			markup: `<svg viewBox="0 0 10 10"><path d="M0 0"/></svg>`,
			want:   `<path d="M0 0"/>`,
		},
		{
			name:   "geometry and grouping kept",
			markup: `<svg><defs><mask id="m"><rect width="4" height="4"/></mask></defs><g mask="url(#m)"><circle cx="1" cy="1" r="1"/><ellipse/><line/><polygon/><polyline/><use href="#x"/></g></svg>`,
			want:   `<defs><mask id="m"><rect width="4" height="4"/></mask></defs><g mask="url(#m)"><circle cx="1" cy="1" r="1"/><ellipse/><line/><polygon/><polyline/><use href="#x"/></g>`,
		},
		{
			name:   "non drawing tags dropped with text kept",
			markup: `<?xml version="1.0"?><svg><title>Close</title><desc>x</desc><path/></svg>`,
			want:   `Closex<path/>`,
		},
		{
			name:   "whitespace preserved",
			markup: "<svg>\r\n  <path d=\"M1 1\"/>\r\n</svg>",
			want:   "\r\n  <path d=\"M1 1\"/>\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripTags(tt.markup); got != tt.want {
				t.Fatalf("strip mismatch\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}
