// Package templates embeds the HTML views rendered by the form handlers.
package templates

import (
	"embed"
	"html/template"
)

// View names.
const (
	LeadForm     = "leadForm.html"
	FeedbackForm = "feedbackForm.html"
	ErrorPage    = "error.html"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded view. Each is addressable by its file name.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
