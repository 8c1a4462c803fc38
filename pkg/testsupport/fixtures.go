package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-svgicons/pkg/iconset"
)

// IconsConfig is the icon set config served by IconFS at "icons.yaml".
const IconsConfig = `
class: icon
fallback: question
sets:
  default:
    path: icons
  solid:
    prefix: solid
    path: icons/solid
    defer: true
`

// IconFS returns a small icon tree shared by package tests.
func IconFS() fstest.MapFS {
	return fstest.MapFS{
		"icons.yaml":           {Data: []byte(IconsConfig)},
		"icons/close.svg":      {Data: []byte(`<svg viewBox="0 0 10 10"><path d="M0 0"/></svg>`)},
		"icons/question.svg":   {Data: []byte(`<svg viewBox="0 0 1 1"><circle r="1"/></svg>`)},
		"icons/solid/bell.svg": {Data: []byte("<svg viewBox=\"0 0 24 24\">\n<path d=\"M1 1\"/>\n</svg>\n")},
	}
}

// MustFactory builds an iconset.Factory over IconFS.
func MustFactory(t *testing.T, options ...iconset.Option) *iconset.Factory {
	t.Helper()

	fsys := IconFS()
	cfg, err := iconset.LoadConfigFS(fsys, "icons.yaml")
	if err != nil {
		t.Fatalf("load icon config: %v", err)
	}
	factory, err := iconset.NewFactory(fsys, cfg, options...)
	if err != nil {
		t.Fatalf("new icon factory: %v", err)
	}
	return factory
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
