package htmlview

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to reuse or extend the built-in view out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func defaultFragment(name string) string {
	data, err := fs.ReadFile(embeddedTemplates, "templates/"+name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
