// Package printpdf renders a filled template into a paginated PDF.
//
// Pagination is manual: a running vertical cursor is checked against the
// remaining page height before every block, and a new page is started when a
// block would not fit. This is a greedy, non-backtracking fit; only the
// wrapped body of a textarea may span a page break, line by line.
package printpdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	gofpdf "github.com/phpdave11/gofpdf"

	"acadforms/internal/forms"
	"acadforms/internal/render"
	"acadforms/internal/schema"
)

// Layout constants in millimeters on an A4 portrait page.
const (
	margin      = 20.0
	topY        = 20.0
	bannerH     = 10.0
	sectionH    = 8.0
	lineH       = 5.0
	fieldH      = 8.0
	valueOffset = 50.0
	ruleWidth   = 0.5
	thickWidth  = 1.0
)

// Dark blue used for banner fills, matching the council letterhead.
var bannerColor = [3]int{0, 51, 102}

type renderer struct {
	pdf    *gofpdf.Fpdf
	y      float64
	pageW  float64
	pageH  float64
	values forms.Values
}

// Render produces the printable PDF for a filled template. The output is
// deterministic for a fixed (template, values, at) triple: compression is
// disabled and the document creation date is pinned to at.
func Render(tpl *schema.Template, values forms.Values, at time.Time) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("printpdf: nil template")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(at)
	pdf.SetTitle(tpl.Name, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	r := &renderer{pdf: pdf, y: topY, pageW: pageW, pageH: pageH, values: values}

	r.titleBanner(tpl.Name)
	for _, sec := range tpl.Sections {
		r.section(sec)
	}
	r.closing(at)

	if pdf.Err() {
		return nil, fmt.Errorf("printpdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("printpdf: writing output: %w", err)
	}
	return buf.Bytes(), nil
}

// checkPageBreak starts a new page when fewer than needed millimeters remain
// below the cursor, resetting the cursor to the top margin.
func (r *renderer) checkPageBreak(needed float64) {
	if r.y+needed > r.pageH-margin {
		r.pdf.AddPage()
		r.y = topY
	}
}

func (r *renderer) contentWidth() float64 {
	return r.pageW - margin*2
}

// banner draws a full-width filled bar with white bold upper-cased text.
func (r *renderer) banner(text string, h, size float64) {
	r.pdf.SetFillColor(bannerColor[0], bannerColor[1], bannerColor[2])
	r.pdf.Rect(margin, r.y, r.contentWidth(), h, "F")
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Helvetica", "B", size)
	r.pdf.Text(margin+2, r.y+h-2.5, strings.ToUpper(text))
}

func (r *renderer) rule() {
	r.pdf.Line(margin, r.y, r.pageW-margin, r.y)
}

func (r *renderer) doubleRule(gap float64) {
	r.rule()
	r.y += gap
	r.rule()
}

func (r *renderer) titleBanner(name string) {
	r.banner(name, bannerH, 12)
	r.y += bannerH + 5

	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(ruleWidth)
	r.doubleRule(2)
	r.y += 10
}

func (r *renderer) section(sec schema.Section) {
	r.checkPageBreak(30)

	r.banner(sec.Title, sectionH, 10)
	r.y += sectionH + 2

	r.pdf.SetDrawColor(0, 0, 0)
	r.rule()
	r.y += 8

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Helvetica", "", 10)

	for _, f := range sec.Fields {
		switch f.Type {
		case schema.FieldTextarea:
			r.textareaField(f)
		case schema.FieldHeader:
			r.headerField(f)
		default:
			r.inlineField(f)
		}
	}

	r.y += 5
}

// inlineField emits "Label:" and the value (or placeholder) on one line, the
// value offset by a fixed indent. The line never splits across a break.
func (r *renderer) inlineField(f schema.Field) {
	r.checkPageBreak(10)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.Text(margin, r.y, f.Label+":")
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.Text(margin+valueOffset, r.y, render.DisplayValue(r.values, f))
	r.y += fieldH
}

// headerField is a display-only sub-heading: the label alone, no value slot.
func (r *renderer) headerField(f schema.Field) {
	r.checkPageBreak(10)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.Text(margin, r.y, f.Label)
	r.pdf.SetFont("Helvetica", "", 10)
	r.y += fieldH
}

// textareaField emits the bold label on its own line, then the value wrapped
// to the printable width. Each wrapped line checks the break on its own, so a
// long block flows onto the next page and resumes at the top margin.
func (r *renderer) textareaField(f schema.Field) {
	r.checkPageBreak(15)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.Text(margin, r.y, f.Label+":")
	r.y += lineH

	r.pdf.SetFont("Helvetica", "", 10)
	lines := r.pdf.SplitText(render.DisplayValue(r.values, f), r.contentWidth())
	for _, line := range lines {
		r.checkPageBreak(lineH + 1)
		r.pdf.Text(margin, r.y, line)
		r.y += lineH
	}
	r.y += 5

	r.pdf.SetLineWidth(ruleWidth)
	r.rule()
	r.y += 10
}

// closing draws the signature area and the fixed council boilerplate block.
func (r *renderer) closing(at time.Time) {
	r.checkPageBreak(50)
	r.y += 10

	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(ruleWidth)
	r.pdf.Line(r.pageW/2-40, r.y, r.pageW/2+40, r.y)
	r.y += 5

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Helvetica", "", 10)
	r.centeredText(render.SignatureCaption)
	r.y += 10
	r.centeredText("Date: " + render.LongDate(at))
	r.y += 10

	r.checkPageBreak(40)
	r.pdf.SetLineWidth(thickWidth)
	r.doubleRule(2)
	r.y += 5

	r.banner(render.CouncilCaption, sectionH, 10)
	r.y += sectionH + 2

	r.pdf.SetLineWidth(thickWidth)
	r.doubleRule(2)
	r.pdf.SetLineWidth(ruleWidth)
}

func (r *renderer) centeredText(s string) {
	w := r.pdf.GetStringWidth(s)
	r.pdf.Text((r.pageW-w)/2, r.y, s)
}
