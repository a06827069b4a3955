// Package rendersvc renders routine documents.
package rendersvc

import (
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core/routine"
	appfs "github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/fs"
)

const routineTemplate = "templates/routine.gohtml"

// HTMLRenderer renders a printable HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

var _ routine.Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses the embedded routine template.
// In strict mode a missing template key is an error.
func NewHTMLRenderer(strict bool) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(appfs.FS, routineTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parsing routine template")
	}
	if strict {
		tmpl = tmpl.Option("missingkey=error")
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Format() string      { return "html" }
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=UTF-8" }

func (r *HTMLRenderer) Render(w io.Writer, doc routine.Document) error {
	return r.tmpl.Execute(w, doc)
}
