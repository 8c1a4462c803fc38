package iconset

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-svgicons/pkg/svg"
)

// ErrIconNotFound is returned (wrapped) when a name does not resolve to a
// file and no fallback icon is configured.
var ErrIconNotFound = errors.New("iconset: icon not found")

// Option configures a Factory.
type Option func(*factoryConfig)

type factoryConfig struct {
	svgOptions []svg.Option
}

// WithSvgOptions applies options to every Svg the factory builds, before any
// per call options.
func WithSvgOptions(options ...svg.Option) Option {
	return func(cfg *factoryConfig) {
		cfg.svgOptions = append(cfg.svgOptions, options...)
	}
}

type namedSet struct {
	name string
	SetConfig
}

type resolved struct {
	set      namedSet
	contents string
}

// Factory builds svg.Svg values from named icons. Loaded markup is cached in
// memory for the lifetime of the Factory.
type Factory struct {
	fsys       fs.FS
	cfg        Config
	sets       []namedSet
	svgOptions []svg.Option

	mu    sync.RWMutex
	cache map[string]string
}

// NewFactory validates cfg and returns a Factory reading icons from fsys.
func NewFactory(fsys fs.FS, cfg Config, options ...Option) (*Factory, error) {
	if fsys == nil {
		return nil, fmt.Errorf("iconset: icon filesystem is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fc := factoryConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&fc)
	}

	sets := make([]namedSet, 0, len(cfg.Sets))
	for name, set := range cfg.Sets {
		sets = append(sets, namedSet{name: name, SetConfig: set})
	}
	// Longest prefix first so "heroicon-o" wins over "heroicon".
	sort.Slice(sets, func(i, j int) bool {
		if len(sets[i].Prefix) != len(sets[j].Prefix) {
			return len(sets[i].Prefix) > len(sets[j].Prefix)
		}
		return sets[i].name < sets[j].name
	})

	return &Factory{
		fsys:       fsys,
		cfg:        cfg,
		sets:       sets,
		svgOptions: fc.svgOptions,
		cache:      make(map[string]string),
	}, nil
}

// Sets returns the configured set names, sorted.
func (f *Factory) Sets() []string {
	names := make([]string, 0, len(f.sets))
	for _, set := range f.sets {
		names = append(names, set.name)
	}
	sort.Strings(names)
	return names
}

// Contents returns the raw markup for name, falling back to the configured
// fallback icon on a miss.
func (f *Factory) Contents(name string) (string, error) {
	r, err := f.lookup(name)
	if err != nil {
		return "", err
	}
	return r.contents, nil
}

// Svg resolves name and builds an svg.Svg. Classes from the config, the set
// and attrs are joined; other attributes are layered config < set < attrs.
// A set level defer flag applies unless attrs carries its own.
func (f *Factory) Svg(name string, attrs svg.Attributes, options ...svg.Option) (*svg.Svg, error) {
	r, err := f.lookup(name)
	if err != nil {
		return nil, err
	}

	merged := svg.Attributes{}
	if class := joinClasses(f.cfg.Class, r.set.Class, classValue(attrs)); class != "" {
		merged.Set("class", class)
	}
	merged = merged.
		Merge(svg.AttributesFromMap(f.cfg.Attributes).Without("class")).
		Merge(svg.AttributesFromMap(r.set.Attributes).Without("class"))
	if r.set.Defer != nil && !attrs.Has(svg.DeferAttribute) {
		merged.Set(svg.DeferAttribute, r.set.Defer)
	}
	merged = merged.Merge(attrs.Without("class"))

	opts := make([]svg.Option, 0, len(f.svgOptions)+len(options))
	opts = append(opts, f.svgOptions...)
	opts = append(opts, options...)
	return svg.New(strings.TrimSpace(name), r.contents, merged, opts...), nil
}

func (f *Factory) lookup(name string) (resolved, error) {
	r, err := f.load(name)
	if err == nil {
		return r, nil
	}
	fallback := f.cfg.Fallback
	if !errors.Is(err, ErrIconNotFound) || fallback == "" || fallback == strings.TrimSpace(name) {
		return resolved{}, err
	}
	r, fallbackErr := f.load(fallback)
	if fallbackErr != nil {
		return resolved{}, fmt.Errorf("iconset: fallback %q for %q: %w", fallback, name, fallbackErr)
	}
	return r, nil
}

func (f *Factory) load(name string) (resolved, error) {
	set, file, err := f.resolve(name)
	if err != nil {
		return resolved{}, err
	}

	key := set.name + ":" + file
	f.mu.RLock()
	contents, ok := f.cache[key]
	f.mu.RUnlock()
	if ok {
		return resolved{set: set, contents: contents}, nil
	}

	data, err := fs.ReadFile(f.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return resolved{}, fmt.Errorf("%w: %q in set %q", ErrIconNotFound, name, set.name)
		}
		return resolved{}, fmt.Errorf("iconset: read %s: %w", file, err)
	}

	contents = strings.TrimSpace(string(data))
	if set.Sanitize {
		contents = svg.Sanitize(contents)
	}

	f.mu.Lock()
	f.cache[key] = contents
	f.mu.Unlock()

	return resolved{set: set, contents: contents}, nil
}

// resolve maps name to a set and the file path of the icon. Dots in the icon
// part select sub directories.
func (f *Factory) resolve(name string) (namedSet, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return namedSet{}, "", fmt.Errorf("%w: empty name", ErrIconNotFound)
	}

	for _, set := range f.sets {
		icon := name
		if set.Prefix != "" {
			if !strings.HasPrefix(name, set.Prefix+"-") {
				continue
			}
			icon = strings.TrimPrefix(name, set.Prefix+"-")
		}
		if icon == "" {
			continue
		}

		file := path.Join(set.Path, strings.ReplaceAll(icon, ".", "/")+".svg")
		if !fs.ValidPath(file) || !withinDir(set.Path, file) {
			return namedSet{}, "", fmt.Errorf("%w: invalid name %q", ErrIconNotFound, name)
		}
		return set, file, nil
	}

	return namedSet{}, "", fmt.Errorf("%w: no set matches %q", ErrIconNotFound, name)
}

func withinDir(dir, file string) bool {
	if dir == "." {
		return true
	}
	return strings.HasPrefix(file, dir+"/")
}

func classValue(attrs svg.Attributes) string {
	value, ok := attrs.Get("class")
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func joinClasses(classes ...string) string {
	var parts []string
	for _, class := range classes {
		parts = append(parts, strings.Fields(class)...)
	}
	return strings.Join(parts, " ")
}
