// Package web holds the embedded browser client served by the API process.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// StaticFS returns the client assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The embedded tree is fixed at build time; this cannot fail at runtime.
		panic(err)
	}
	return sub
}
