package deferred

import (
	"strings"
	"sync"
)

// Fragment is one registered piece of markup.
type Fragment struct {
	ID     string
	Markup string
}

// Registry stores fragments by identifier, keeping only the first
// registration for each id. It is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	seen      map[string]struct{}
	fragments []Fragment
}

// New creates an empty registry for one render pass.
func New() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

// RegisterOnce runs render and stores its output when id has not been seen
// yet. It reports whether a fragment was added. Empty ids and nil render
// functions are ignored.
func (r *Registry) RegisterOnce(id string, render func() string) bool {
	if r == nil || id == "" || render == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, exists := r.seen[id]; exists {
		return false
	}
	r.seen[id] = struct{}{}
	r.fragments = append(r.fragments, Fragment{ID: id, Markup: render()})
	return true
}

// Has reports whether id was registered.
func (r *Registry) Has(id string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.seen[id]
	return ok
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.fragments)
}

// Fragments returns the registered fragments in registration order.
func (r *Registry) Fragments() []Fragment {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Fragment(nil), r.fragments...)
}

// Markup joins every fragment with a newline.
func (r *Registry) Markup() string {
	fragments := r.Fragments()
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		parts = append(parts, fragment.Markup)
	}
	return strings.Join(parts, "\n")
}

// Sprite wraps the fragments in a hidden <svg> element so <use href="#id">
// references elsewhere in the document resolve. It returns an empty string
// when nothing was registered.
func (r *Registry) Sprite() string {
	markup := r.Markup()
	if markup == "" {
		return ""
	}
	return `<svg hidden class="hidden">` + "\n" + markup + "\n" + `</svg>`
}

// Reset clears the registry so it can serve a new render pass.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seen = make(map[string]struct{})
	r.fragments = nil
}
