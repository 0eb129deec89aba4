// Package renderer builds HTML pages from an embedded template set, replacing
// the remote template renderer used elsewhere on the platform so this service
// has no rendering dependency at request time.
package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer holds the parsed template set
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// BuildPage executes the named page template with the given model, appending
// the document to w. The writer is never reset or cleared: building twice
// into the same writer yields two sibling documents.
func (r *Renderer) BuildPage(w io.Writer, pageModel interface{}, templateName string) error {
	t := r.tmpl.Lookup(templateName + ".tmpl")
	if t == nil {
		return fmt.Errorf("template not found: %q", templateName)
	}
	return t.Execute(w, pageModel)
}
