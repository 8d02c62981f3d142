package main

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/Nixie-Tech-LLC/minaret/internal/site"
)

// LoadTemplates parses the site pages (*.html) and their shared partials (*.tmpl).
func LoadTemplates(dir string) (*template.Template, error) {
	tmpl := template.New("").Funcs(site.FuncMap())
	for _, pattern := range []string{"*.tmpl", "*.html"} {
		files, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}
		if tmpl, err = tmpl.ParseFiles(files...); err != nil {
			return nil, fmt.Errorf("parse %s: %w", pattern, err)
		}
	}
	if tmpl.Lookup("index.html") == nil {
		return nil, fmt.Errorf("no index.html in %s", dir)
	}
	return tmpl, nil
}
