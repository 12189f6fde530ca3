// Package web embeds the storefront assets served next to the API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:static
var assets embed.FS

// Static returns an http.Handler serving the embedded storefront.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// Only reachable if the embed directive and directory name diverge.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
