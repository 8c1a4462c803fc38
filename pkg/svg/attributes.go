package svg

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Attribute is a single name/value pair rendered onto the root <svg> tag.
// Values may be strings, booleans, nil, or anything fmt can print.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute bag. Render order follows insertion
// order; Set keeps the position of an existing entry.
type Attributes []Attribute

// Attrs builds an attribute bag from alternating name/value arguments. A
// trailing name without a value is rendered as a bare attribute.
func Attrs(pairs ...any) Attributes {
	out := make(Attributes, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		name := strings.TrimSpace(fmt.Sprint(pairs[i]))
		if name == "" {
			continue
		}
		var value any = true
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		out.Set(name, value)
	}
	return out
}

// AttributesFromMap converts a map into an attribute bag sorted by name so
// the rendered output is stable.
func AttributesFromMap(values map[string]any) Attributes {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, 0, len(values))
	for name := range values {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make(Attributes, 0, len(names))
	for _, name := range names {
		out = append(out, Attribute{Name: strings.TrimSpace(name), Value: values[name]})
	}
	return out
}

// Get returns the value stored for name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether name is present, regardless of its value.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set adds name or overwrites its value in place.
func (a *Attributes) Set(name string, value any) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Delete removes name from the bag.
func (a *Attributes) Delete(name string) {
	out := (*a)[:0]
	for _, attr := range *a {
		if attr.Name != name {
			out = append(out, attr)
		}
	}
	*a = out
}

// Merge overlays other onto a copy of the receiver. Entries from other win.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a.Clone()
	for _, attr := range other {
		out.Set(attr.Name, attr.Value)
	}
	return out
}

// Clone returns a copy that can be mutated independently.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return append(Attributes(nil), a...)
}

// Without returns a copy of the bag minus the supplied names.
func (a Attributes) Without(names ...string) Attributes {
	out := a.Clone()
	for _, name := range names {
		out.Delete(name)
	}
	return out
}

// AttributeRenderer serialises an attribute bag for insertion right after
// "<svg".
type AttributeRenderer interface {
	RenderAttributes(attrs Attributes) string
}

// AttributeRendererFunc adapts a plain function to AttributeRenderer.
type AttributeRendererFunc func(attrs Attributes) string

func (fn AttributeRendererFunc) RenderAttributes(attrs Attributes) string {
	return fn(attrs)
}

// HTMLAttributes is the default renderer. Each attribute is prefixed with a
// space, values are HTML escaped, false and nil values are skipped and true
// renders the bare attribute name.
type HTMLAttributes struct{}

var _ AttributeRenderer = HTMLAttributes{}

func (HTMLAttributes) RenderAttributes(attrs Attributes) string {
	var b strings.Builder
	for _, attr := range attrs {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			continue
		}
		switch v := attr.Value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			b.WriteByte(' ')
			b.WriteString(html.EscapeString(name))
		default:
			b.WriteByte(' ')
			b.WriteString(html.EscapeString(name))
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(fmt.Sprint(v)))
			b.WriteByte('"')
		}
	}
	return b.String()
}
