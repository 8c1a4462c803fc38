package iconset

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-svgicons/pkg/deferred"
	"github.com/goliatone/go-svgicons/pkg/svg"
)

const configYAML = `
class: icon
attributes:
  aria-hidden: "true"
fallback: question
sets:
  default:
    path: icons/default
  heroicon-o:
    prefix: heroicon-o
    path: icons/heroicons/outline
    class: stroke-current
    attributes:
      fill: none
      stroke-width: 1.5
  lucide:
    prefix: lucide
    path: icons/lucide
    defer: true
  untrusted:
    prefix: ext
    path: icons/ext
    sanitize: true
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"icons.yaml":                            {Data: []byte(configYAML)},
		"icons/default/question.svg":            {Data: []byte(`<svg viewBox="0 0 1 1"><circle r="1"/></svg>`)},
		"icons/default/close.svg":               {Data: []byte("\n<svg viewBox=\"0 0 10 10\"><path d=\"M0 0\"/></svg>\n")},
		"icons/heroicons/outline/x-mark.svg":    {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M6 18 18 6"/></svg>`)},
		"icons/heroicons/outline/arrows/up.svg": {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M12 4v16"/></svg>`)},
		"icons/lucide/bell.svg":                 {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M1 1"/></svg>`)},
		"icons/ext/bad.svg":                     {Data: []byte(`<svg viewBox="0 0 24 24"><script>alert(1)</script><path d="M1 1"/></svg>`)},
	}
}

func newTestFactory(t *testing.T, options ...Option) *Factory {
	t.Helper()

	fsys := testFS()
	cfg, err := LoadConfigFS(fsys, "icons.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	factory, err := NewFactory(fsys, cfg, options...)
	if err != nil {
		t.Fatalf("new factory: %v", err)
	}
	return factory
}

func TestFactoryContentsResolvesPrefixes(t *testing.T) {
	factory := newTestFactory(t)

	tests := []struct {
		name string
		want string
	}{
		{name: "close", want: `<svg viewBox="0 0 10 10"><path d="M0 0"/></svg>`},
		{name: "heroicon-o-x-mark", want: `<svg viewBox="0 0 24 24"><path d="M6 18 18 6"/></svg>`},
		{name: "heroicon-o-arrows.up", want: `<svg viewBox="0 0 24 24"><path d="M12 4v16"/></svg>`},
		{name: "lucide-bell", want: `<svg viewBox="0 0 24 24"><path d="M1 1"/></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := factory.Contents(tt.name)
			if err != nil {
				t.Fatalf("contents: %v", err)
			}
			if got != tt.want {
				t.Fatalf("contents mismatch\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}

func TestFactoryFallsBackOnMiss(t *testing.T) {
	factory := newTestFactory(t)

	got, err := factory.Contents("heroicon-o-missing")
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if got != `<svg viewBox="0 0 1 1"><circle r="1"/></svg>` {
		t.Fatalf("expected fallback icon, got %q", got)
	}
}

func TestFactoryMissWithoutFallback(t *testing.T) {
	fsys := testFS()
	cfg, err := LoadConfigFS(fsys, "icons.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Fallback = ""
	factory, err := NewFactory(fsys, cfg)
	if err != nil {
		t.Fatalf("new factory: %v", err)
	}

	_, err = factory.Contents("nope")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
	_, err = factory.Contents("  ")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound for empty name, got %v", err)
	}
}

func TestFactoryRejectsEscapingNames(t *testing.T) {
	factory := newTestFactory(t)
	factory.cfg.Fallback = ""

	_, err := factory.Contents("heroicon-o-../../default/close")
	if !errors.Is(err, ErrIconNotFound) {
		t.Fatalf("expected ErrIconNotFound, got %v", err)
	}
}

func TestFactorySanitizesFlaggedSets(t *testing.T) {
	factory := newTestFactory(t)

	got, err := factory.Contents("ext-bad")
	if err != nil {
		t.Fatalf("contents: %v", err)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script to be stripped, got %q", got)
	}
	if !strings.Contains(got, "<path") {
		t.Fatalf("expected path to survive, got %q", got)
	}
}

func TestFactorySvgMergesDefaults(t *testing.T) {
	factory := newTestFactory(t)

	icon, err := factory.Svg("heroicon-o-x-mark", svg.Attrs("class", "w-6 h-6", "stroke-width", 2))
	if err != nil {
		t.Fatalf("svg: %v", err)
	}

	want := svg.Attributes{
		{Name: "class", Value: "icon stroke-current w-6 h-6"},
		{Name: "aria-hidden", Value: "true"},
		{Name: "fill", Value: "none"},
		{Name: "stroke-width", Value: 2},
	}
	if diff := cmp.Diff(want, icon.Attributes()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if icon.Name() != "heroicon-o-x-mark" {
		t.Fatalf("unexpected name %q", icon.Name())
	}

	wantHTML := `<svg class="icon stroke-current w-6 h-6" aria-hidden="true" fill="none" stroke-width="2" viewBox="0 0 24 24"><path d="M6 18 18 6"/></svg>`
	if got := icon.Render(); got != wantHTML {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", wantHTML, got)
	}
}

func TestFactorySvgAppliesSetDefer(t *testing.T) {
	registry := deferred.New()
	factory := newTestFactory(t, WithSvgOptions(svg.WithRegistrar(registry)))

	for i := 0; i < 3; i++ {
		icon, err := factory.Svg("lucide-bell", nil)
		if err != nil {
			t.Fatalf("svg: %v", err)
		}
		if !strings.Contains(icon.Contents(), `<use href="#icon-`) {
			t.Fatalf("expected deferred reference, got %q", icon.Contents())
		}
	}
	if registry.Len() != 1 {
		t.Fatalf("expected one hoisted definition, got %d", registry.Len())
	}

	icon, err := factory.Svg("lucide-bell", svg.Attrs("defer", false))
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	if strings.Contains(icon.Contents(), "<use") {
		t.Fatalf("expected caller defer=false to win, got %q", icon.Contents())
	}
}

func TestFactorySets(t *testing.T) {
	factory := newTestFactory(t)
	want := []string{"default", "heroicon-o", "lucide", "untrusted"}
	if diff := cmp.Diff(want, factory.Sets()); diff != "" {
		t.Fatalf("sets mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFactoryRequiresFS(t *testing.T) {
	if _, err := NewFactory(nil, Config{}); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}
}
