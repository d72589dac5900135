// Package preview renders the on-screen mirror of the final document as a
// self-contained HTML fragment. It follows the same ordering and
// blank-placeholder conventions as the export renderers so what the user
// sees while editing is what the exports will contain.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"acadforms/internal/forms"
	"acadforms/internal/render"
	"acadforms/internal/schema"
)

const previewHTML = `<div class="doc-preview">
  <div class="doc-banner doc-title">{{.Title}}</div>
  {{- range .Sections}}
  <div class="doc-section">
    <div class="doc-banner">{{.Title}}</div>
    {{- range .Fields}}
    {{- if .IsHeader}}
    <div class="doc-subheading">{{.Label}}</div>
    {{- else if .IsBlock}}
    <div class="doc-field doc-field-block">
      <span class="doc-label">{{.Label}}:</span>
      <div class="doc-value">{{.Value}}</div>
    </div>
    {{- else}}
    <div class="doc-field">
      <span class="doc-label">{{.Label}}:</span>
      <span class="doc-value">{{.Value}}</span>
    </div>
    {{- end}}
    {{- end}}
  </div>
  {{- end}}
  <div class="doc-signature">
    <div class="doc-signature-rule"></div>
    <div>{{.SignatureCaption}}</div>
    <div>Date: {{.Date}}</div>
  </div>
  <div class="doc-banner doc-council">{{.CouncilCaption}}</div>
</div>
`

var previewTmpl = template.Must(template.New("preview").Parse(previewHTML))

type fieldView struct {
	Label    string
	Value    string
	IsBlock  bool
	IsHeader bool
}

type sectionView struct {
	Title  string
	Fields []fieldView
}

type docView struct {
	Title            string
	Sections         []sectionView
	SignatureCaption string
	CouncilCaption   string
	Date             string
}

// Render produces the HTML preview for a filled template.
func Render(tpl *schema.Template, values forms.Values, at time.Time) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("preview: nil template")
	}

	view := docView{
		Title:            strings.ToUpper(tpl.Name),
		SignatureCaption: render.SignatureCaption,
		CouncilCaption:   strings.ToUpper(render.CouncilCaption),
		Date:             render.LongDate(at),
	}
	for _, sec := range tpl.Sections {
		sv := sectionView{Title: strings.ToUpper(sec.Title)}
		for _, f := range sec.Fields {
			sv.Fields = append(sv.Fields, fieldView{
				Label:    f.Label,
				Value:    render.DisplayValue(values, f),
				IsBlock:  f.Type == schema.FieldTextarea,
				IsHeader: f.Type == schema.FieldHeader,
			})
		}
		view.Sections = append(view.Sections, sv)
	}

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("preview: executing template: %w", err)
	}
	return buf.Bytes(), nil
}
