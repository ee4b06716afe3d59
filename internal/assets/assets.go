// Package assets holds the embedded HTML templates: the entry-point
// fragment the serialized tree is spliced into, and a default index
// page template for standalone snapshot generation.
package assets

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

// ErrTemplateNotFound indicates a template name with no embedded file.
var ErrTemplateNotFound = errors.New("template not found")

// Template names.
const (
	EntryTemplateName = "entry"
	IndexTemplateName = "index"
)

// LoadTemplate loads an embedded HTML template by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// EntryFragment returns the entry-point fragment template.
// Panics if the embedded file is missing (programmer error).
func EntryFragment() string {
	content, err := LoadTemplate(EntryTemplateName)
	if err != nil {
		panic("failed to load entry template: " + err.Error())
	}
	return content
}

// DefaultIndex returns the default index page template.
// Panics if the embedded file is missing (programmer error).
func DefaultIndex() string {
	content, err := LoadTemplate(IndexTemplateName)
	if err != nil {
		panic("failed to load index template: " + err.Error())
	}
	return content
}
