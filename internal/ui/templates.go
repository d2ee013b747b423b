package ui

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Parse parses the embedded page templates.
func Parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"percent": func(p float64) string {
			return fmt.Sprintf("%.2f%%", p*100)
		},
		"probColor": func(p float64) string {
			if p >= 0.5 {
				return "red"
			}
			return "green"
		},
	}
	tmpl, err := template.New("ui").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing ui templates: %w", err)
	}
	return tmpl, nil
}
