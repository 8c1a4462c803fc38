// Package deferred collects markup fragments that must be emitted once per
// rendered document, such as the hoisted bodies of deferred icons. A Registry
// is scoped to one render pass: create one per response (Middleware does this
// for HTTP handlers) and print its Sprite once the page body is complete.
package deferred
