package hints

import (
	"embed"
	"io/fs"
)

//go:embed overlays/*
var embeddedOverlays embed.FS

// EmbeddedFS returns the bundled default hint overlays. Callers may pass this
// filesystem to LoadFS to use the default profiles.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedOverlays, "overlays")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}
