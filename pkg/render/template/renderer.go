package template

import (
	"context"
	"io"
)

// TemplateRenderer is the seam between page templates and icon rendering.
// Every call is one render pass: deferred icons registered while executing
// a template are emitted once, wherever the template asks for the stack.
// A deferred.Registry stored in ctx is reused, which lets several templates
// rendered for the same response share one pass.
type TemplateRenderer interface {
	RenderTemplate(ctx context.Context, name string, data any, out ...io.Writer) (string, error)
	RenderString(ctx context.Context, templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
