package svg

// Registrar receives deferred icon bodies. RegisterOnce must run render and
// keep its output only the first time id is seen within a render pass.
// deferred.Registry satisfies this interface.
type Registrar interface {
	RegisterOnce(id string, render func() string) bool
}

// Option configures an Svg at construction time.
type Option func(*config)

type config struct {
	renderer  AttributeRenderer
	registrar Registrar
	ids       func() string
}

// WithAttributeRenderer swaps the attribute serialiser used by Render.
func WithAttributeRenderer(renderer AttributeRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithRegistrar registers deferred bodies with the supplied render pass
// registry. Without it a deferred icon only records its Definition.
func WithRegistrar(registrar Registrar) Option {
	return func(cfg *config) {
		if registrar != nil {
			cfg.registrar = registrar
		}
	}
}

// WithIDGenerator overrides the random suffix used for title identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.ids = fn
		}
	}
}
