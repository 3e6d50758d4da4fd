package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/css/*.css
var staticFS embed.FS

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"lower": strings.ToLower,
		"year":  func() int { return time.Now().Year() },
		"date": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"ms": func(d time.Duration) int64 { return d.Milliseconds() },
	}
}

// parseTemplates loads every embedded template into one set. Pages and
// fragments are addressed by file name, partials by their define name.
func parseTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
