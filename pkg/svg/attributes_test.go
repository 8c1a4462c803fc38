package svg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTMLAttributesRender(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
		want  string
	}{
		{name: "empty", attrs: nil, want: ""},
		{name: "string", attrs: Attrs("class", "w-4 h-4"), want: ` class="w-4 h-4"`},
		{name: "order preserved", attrs: Attrs("width", "24", "class", "icon"), want: ` width="24" class="icon"`},
		{name: "true is bare", attrs: Attrs("hidden", true), want: ` hidden`},
		{name: "false omitted", attrs: Attrs("hidden", false, "class", "x"), want: ` class="x"`},
		{name: "nil omitted", attrs: Attrs("fill", nil), want: ""},
		{name: "numbers", attrs: Attrs("width", 24, "opacity", 0.5), want: ` width="24" opacity="0.5"`},
		{name: "escaped", attrs: Attrs("data-label", `"a" & <b>`), want: ` data-label="&#34;a&#34; &amp; &lt;b&gt;"`},
		{name: "trailing name", attrs: Attrs("class", "x", "focusable"), want: ` class="x" focusable`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTMLAttributes{}.RenderAttributes(tt.attrs)
			if got != tt.want {
				t.Fatalf("render mismatch\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}

func TestAttributesSetKeepsPosition(t *testing.T) {
	attrs := Attrs("a", "1", "b", "2", "c", "3")
	attrs.Set("b", "two")
	attrs.Set("d", "4")

	want := Attributes{{"a", "1"}, {"b", "two"}, {"c", "3"}, {"d", "4"}}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesDeleteAndWithout(t *testing.T) {
	attrs := Attrs("a", "1", "defer", true, "b", "2")

	without := attrs.Without("defer")
	if without.Has("defer") {
		t.Fatalf("expected defer to be removed")
	}
	if !attrs.Has("defer") {
		t.Fatalf("Without must not mutate the receiver")
	}

	attrs.Delete("a")
	want := Attributes{{"defer", true}, {"b", "2"}}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesMerge(t *testing.T) {
	base := Attrs("class", "icon", "fill", "none")
	merged := base.Merge(Attrs("fill", "currentColor", "width", "16"))

	want := Attributes{{"class", "icon"}, {"fill", "currentColor"}, {"width", "16"}}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}
	if value, _ := base.Get("fill"); value != "none" {
		t.Fatalf("Merge must not mutate the receiver, fill=%v", value)
	}
}

func TestAttributesFromMapSortsNames(t *testing.T) {
	attrs := AttributesFromMap(map[string]any{"width": "24", "class": "x", " ": "skip", "aria-hidden": "true"})

	want := Attributes{{"aria-hidden", "true"}, {"class", "x"}, {"width", "24"}}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if AttributesFromMap(nil) != nil {
		t.Fatalf("expected nil for empty map")
	}
}
