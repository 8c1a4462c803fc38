package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-svgicons/pkg/deferred"
	"github.com/goliatone/go-svgicons/pkg/iconset"
	"github.com/goliatone/go-svgicons/pkg/svg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("svgicon: %v", err)
	}
}

type attrFlags []string

func (a *attrFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *attrFlags) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("attribute must be name=value or name")
	}
	*a = append(*a, value)
	return nil
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("svgicon", flag.ContinueOnError)
	root := fs.String("root", ".", "directory icon sets and the config are resolved from")
	config := fs.String("config", "icons.yaml", "icon set config, relative to -root")
	name := fs.String("name", "", "icon name to resolve through the icon sets")
	file := fs.String("file", "", "render a raw SVG file instead of a named icon")
	title := fs.String("title", "", "accessible title injected into the icon")
	deferFlag := fs.String("defer", "", `defer the icon body: "true" for a content hash id or a key`)
	sanitize := fs.Bool("sanitize", false, "sanitize -file markup before rendering")
	output := fs.String("output", "", "output file (stdout if empty)")
	var attrs attrFlags
	fs.Var(&attrs, "attr", "attribute as name=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bag := parseAttributes(attrs)
	if *title != "" {
		bag.Set(svg.TitleAttribute, *title)
	}
	if value, ok := parseDefer(*deferFlag); ok {
		bag.Set(svg.DeferAttribute, value)
	}

	registry := deferred.New()
	icon, err := buildIcon(*root, *config, *name, *file, *sanitize, bag, registry)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(icon.Render())
	if sprite := registry.Sprite(); sprite != "" {
		if !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteByte('\n')
		}
		buf.WriteString(sprite)
	}
	buf.WriteByte('\n')

	if *output != "" {
		if err := atomic.WriteFile(*output, &buf); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(stdout, "Icon written to %s\n", *output)
		return nil
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

func buildIcon(root, config, name, file string, sanitize bool, attrs svg.Attributes, registry *deferred.Registry) (*svg.Svg, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read icon: %w", err)
		}
		contents := strings.TrimSpace(string(data))
		if sanitize {
			contents = svg.Sanitize(contents)
		}
		return svg.New(iconName(name, file), contents, attrs, svg.WithRegistrar(registry)), nil
	case name != "":
		fsys := os.DirFS(root)
		cfg, err := iconset.LoadConfigFS(fsys, config)
		if err != nil {
			return nil, err
		}
		factory, err := iconset.NewFactory(fsys, cfg)
		if err != nil {
			return nil, err
		}
		return factory.Svg(name, attrs, svg.WithRegistrar(registry))
	default:
		return nil, errors.New("either -name or -file is required")
	}
}

func iconName(name, file string) string {
	if name != "" {
		return name
	}
	base := file[strings.LastIndexAny(file, `/\`)+1:]
	return strings.TrimSuffix(base, ".svg")
}

// parseAttributes turns name=value flags into an ordered bag. "true" and
// "false" become booleans; a bare name is a boolean attribute.
func parseAttributes(values []string) svg.Attributes {
	var out svg.Attributes
	for _, raw := range values {
		name, value, found := strings.Cut(raw, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !found {
			out.Set(name, true)
			continue
		}
		switch value {
		case "true":
			out.Set(name, true)
		case "false":
			out.Set(name, false)
		default:
			out.Set(name, value)
		}
	}
	return out
}

func parseDefer(raw string) (any, bool) {
	switch value := strings.TrimSpace(raw); value {
	case "", "false":
		return nil, false
	case "true":
		return true, true
	default:
		return value, true
	}
}
