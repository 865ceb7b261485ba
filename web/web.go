// Package web holds the server-side HTML templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page and the shared layout blocks. Pages are named by
// file name, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
