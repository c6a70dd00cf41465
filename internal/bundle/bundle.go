// Package bundle carries the packaged web application. The tree under build/
// is produced by the web front-end build and compiled into the binary.
package bundle

import (
	"embed"
	"io/fs"
)

// Root is the top-level name of the bundled tree
const Root = "build"

//go:embed all:build
var files embed.FS

// FS returns the bundle with Root as its only top-level entry
func FS() fs.FS {
	return files
}
