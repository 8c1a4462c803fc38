package svg

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

const (
	// DeferAttribute is consumed by New and never rendered. It accepts false,
	// true (content hash identifier) or a string key.
	DeferAttribute = "defer"
	// TitleAttribute triggers <title> injection and is not rendered itself.
	TitleAttribute = "title"
	// DefinitionPrefix prefixes every deferred definition identifier.
	DefinitionPrefix = "icon-"
)

var rootTagPattern = regexp.MustCompile(`<svg[^>]*>`)

// Definition is the hoisted body of a deferred icon.
type Definition struct {
	ID   string
	Body string
}

// Markup wraps the body in a group element carrying the definition id.
func (d Definition) Markup() string {
	return `<g id="` + html.EscapeString(d.ID) + `">` + d.Body + `</g>`
}

// Svg renders one icon. Instances are built per render and discarded after
// Render is called.
type Svg struct {
	name       string
	contents   string
	attributes Attributes
	definition *Definition

	renderer AttributeRenderer
	ids      func() string
}

// New builds an Svg. A "defer" entry in attrs is removed from the bag and,
// when truthy, rewrites contents into a <use> reference whose body is handed
// to the configured Registrar.
func New(name, contents string, attrs Attributes, options ...Option) *Svg {
	cfg := config{
		renderer: HTMLAttributes{},
		ids:      defaultTitleSuffix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	flag, _ := attrs.Get(DeferAttribute)
	rewritten, def := deferContent(contents, flag)

	s := &Svg{
		name:       name,
		contents:   rewritten,
		attributes: attrs.Without(DeferAttribute),
		definition: def,
		renderer:   cfg.renderer,
		ids:        cfg.ids,
	}

	if def != nil && cfg.registrar != nil {
		cfg.registrar.RegisterOnce(def.ID, def.Markup)
	}
	return s
}

// Name returns the icon name given to New.
func (s *Svg) Name() string {
	return s.name
}

// Contents returns the current markup. Deferred icons hold the <use>
// reference instead of their drawing elements.
func (s *Svg) Contents() string {
	return s.contents
}

// Attributes returns a copy of the current attribute bag.
func (s *Svg) Attributes() Attributes {
	return s.attributes.Clone()
}

// Definition returns the hoisted body when the icon was deferred.
func (s *Svg) Definition() (Definition, bool) {
	if s.definition == nil {
		return Definition{}, false
	}
	return *s.definition, true
}

// AddTitle records aria-labelledby for a freshly generated title id and
// returns the contents with <title id="...">title</title> inserted after the
// root opening tag. Contents without a root tag are returned unchanged.
func (s *Svg) AddTitle(title string) string {
	id := titleIDPrefix + s.ids()
	element := `<title id="` + html.EscapeString(id) + `">` + html.EscapeString(title) + `</title>`

	s.attributes.Set("aria-labelledby", id)

	loc := rootTagPattern.FindStringIndex(s.contents)
	if loc == nil {
		return s.contents
	}
	return s.contents[:loc[1]] + element + s.contents[loc[1]:]
}

// Render returns the final markup with attributes inserted after the first
// "<svg". A title attribute is turned into a <title> element first.
func (s *Svg) Render() string {
	if value, ok := s.attributes.Get(TitleAttribute); ok {
		if title, ok := titleText(value); ok {
			s.contents = s.AddTitle(title)
		}
	}

	attrs := s.renderer.RenderAttributes(s.attributes.Without(TitleAttribute))
	return strings.Replace(s.contents, "<svg", "<svg"+attrs, 1)
}

// HTML renders the icon for html/template callers.
func (s *Svg) HTML() template.HTML {
	return template.HTML(s.Render())
}

func titleText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// deferKey reports whether flag requests deferral and the explicit key to
// use. An empty key means the identifier comes from the content hash; only
// strings are used as keys.
func deferKey(flag any) (string, bool) {
	switch v := flag.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return strings.TrimSpace(v), true
	default:
		return "", true
	}
}

func deferContent(contents string, flag any) (string, *Definition) {
	key, ok := deferKey(flag)
	if !ok {
		return contents, nil
	}

	body := stripTags(contents)
	id := DefinitionPrefix + key
	if key == "" {
		id = DefinitionPrefix + ContentHash(body)
	}

	ref := `<use href="#` + html.EscapeString(id) + `"></use>`
	rewritten, found := replaceFirst(contents, body, ref)
	if !found {
		// Whitespace after </svg> ends up in the stripped body but is not
		// adjacent to the drawing elements in the source markup.
		rewritten, _ = replaceFirst(contents, strings.TrimSpace(body), ref)
	}

	return rewritten + "\n", &Definition{
		ID:   id,
		Body: strings.TrimLeft(body, "\r\n"),
	}
}

// ContentHash is the hex MD5 digest of body after line ending normalisation.
func ContentHash(body string) string {
	sum := md5.Sum([]byte(normalizeLineEndings(body)))
	return hex.EncodeToString(sum[:])
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func replaceFirst(s, old, replacement string) (string, bool) {
	if old == "" {
		return s, false
	}
	idx := strings.Index(s, old)
	if idx < 0 {
		return s, false
	}
	return s[:idx] + replacement + s[idx+len(old):], true
}
