// Package flowdocx renders a filled template into an editable DOCX document.
//
// Unlike the print renderer there is no page-break arithmetic here: the host
// word processor paginates. Ordering, labeling and the blank-placeholder
// policy are identical to the print renderer; the signature date uses the
// same long form so both artifacts read as the same logical document.
package flowdocx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	docx "github.com/fumiama/go-docx"

	"acadforms/internal/forms"
	"acadforms/internal/render"
	"acadforms/internal/schema"
)

// Banner fill and text colors, matching the print renderer's letterhead.
const (
	bannerFill = "003366"
	whiteText  = "FFFFFF"
)

// Font sizes in half-points.
const (
	titleSize  = "32" // 16pt
	bannerSize = "24" // 12pt
)

const signatureRule = "__________________________________________"

// Render produces the flow document for a filled template.
func Render(tpl *schema.Template, values forms.Values, at time.Time) ([]byte, error) {
	if tpl == nil {
		return nil, fmt.Errorf("flowdocx: nil template")
	}

	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(strings.ToUpper(tpl.Name)).Size(titleSize).Bold()
	w.AddParagraph()

	for _, sec := range tpl.Sections {
		addSection(w, sec, values)
	}
	addClosing(w, at)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("flowdocx: packaging document: %w", err)
	}
	return repack(buf.Bytes(), at)
}

// repack rewrites the archive with its entries in name order and a pinned
// modification time. The OOXML writer emits entries in map-iteration order,
// so without this the same input yields different bytes run to run.
func repack(src []byte, at time.Time) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, fmt.Errorf("flowdocx: reading archive: %w", err)
	}

	files := make([]*zip.File, len(zr.File))
	copy(files, zr.File)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range files {
		dst, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   f.Method,
			Modified: at.UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("flowdocx: rewriting %s: %w", f.Name, err)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("flowdocx: reading %s: %w", f.Name, err)
		}
		if _, err := io.Copy(dst, rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("flowdocx: copying %s: %w", f.Name, err)
		}
		rc.Close()
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flowdocx: closing archive: %w", err)
	}
	return out.Bytes(), nil
}

func addSection(w *docx.Docx, sec schema.Section, values forms.Values) {
	banner := w.AddParagraph()
	banner.AddText(strings.ToUpper(sec.Title)).
		Size(bannerSize).
		Bold().
		Color(whiteText).
		Shade("clear", "auto", bannerFill)

	for _, f := range sec.Fields {
		switch f.Type {
		case schema.FieldTextarea:
			// Label line, then the value as its own block; the host
			// application wraps and paginates it.
			w.AddParagraph().AddText(f.Label + ":").Bold()
			w.AddParagraph().AddText(render.DisplayValue(values, f))
		case schema.FieldHeader:
			w.AddParagraph().AddText(f.Label).Bold()
		default:
			p := w.AddParagraph()
			p.AddText(f.Label + ": ").Bold()
			p.AddText(render.DisplayValue(values, f))
		}
	}

	w.AddParagraph()
}

func addClosing(w *docx.Docx, at time.Time) {
	w.AddParagraph()
	w.AddParagraph()

	w.AddParagraph().Justification("center").AddText(signatureRule)
	sig := w.AddParagraph().Justification("center")
	sig.AddText(render.SignatureCaption).Bold()
	w.AddParagraph().Justification("center").AddText("Date: " + render.LongDate(at))

	council := w.AddParagraph().Justification("center")
	council.AddText(strings.ToUpper(render.CouncilCaption)).
		Bold().
		Color(whiteText).
		Shade("clear", "auto", bannerFill)

	// Small review grid standing in for the print renderer's ruled box.
	tbl := w.AddTable(2, 2, 0, nil)
	tbl.TableRows[0].TableCells[0].AddParagraph().AddText("Status: ___________________")
	tbl.TableRows[0].TableCells[1].AddParagraph().AddText("Approved by: ___________________")
	tbl.TableRows[1].TableCells[0].AddParagraph().AddText("Observations:")
	tbl.TableRows[1].TableCells[1].AddParagraph()
}
