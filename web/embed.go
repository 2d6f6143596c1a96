// Package web bundles the browser upload client served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// Static returns the browser client assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("web: static assets missing: " + err.Error())
	}
	return sub
}
