// Package template defines the renderer-agnostic template contract used to
// place icons into pages. The gotemplate sub package implements it on top of
// pongo2 and exposes two template functions:
//
//	{{ svg("heroicon-o-x-mark", "class", "w-4", "defer", true) }}
//	{{ svg_stack() }}
//
// svg renders one icon through an iconset factory; svg_stack marks where the
// hidden sprite holding deferred icon bodies is written once the template has
// finished executing.
package template
