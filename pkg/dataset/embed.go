package dataset

import (
	"embed"
	"io/fs"
)

//go:embed data/*.csv
var embeddedData embed.FS

// DataFS exposes the embedded default dataset so callers can inspect the raw
// CSV files or feed them back through WithFS.
func DataFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// Should never happen; keep the raw FS usable as a fallback.
		return embeddedData
	}
	return sub
}
