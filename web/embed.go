package web

import (
	"embed"
	"io/fs"
)

// Static embeds the upload page and its assets.
//
//go:embed static
var Static embed.FS

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() (fs.FS, error) {
	return fs.Sub(Static, "static")
}
