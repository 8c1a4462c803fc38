// Package iconset resolves icon names to raw SVG markup stored in an fs.FS.
// Sets are declared in a JSON or YAML config: each set owns a directory, an
// optional name prefix ("heroicon-o-x" resolves "x" inside the "heroicon-o"
// set) and default classes or attributes merged into every icon it builds.
//
// The Factory only looks icons up by name; it does not scan, bundle or
// optimise icon directories.
package iconset
