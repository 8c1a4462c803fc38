// Package svg renders icon markup with caller supplied attributes. An Svg
// merges attributes onto the root <svg> tag, injects an accessible <title>
// when a "title" attribute is present, and can defer its drawable body into a
// shared definition that is emitted once per render pass while the icon
// itself keeps only a <use href="#id"> reference.
//
// The package works on markup text. It does not parse or validate SVG
// documents; markup without a root <svg> tag passes through unchanged.
package svg
