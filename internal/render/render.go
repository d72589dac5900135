// Package render defines the conventions every renderer must share: the
// blank-placeholder token for unanswered fields, the signature-date format,
// and the deterministic artifact naming scheme. The print, flow and preview
// renderers all build on this package so the three outputs stay
// content-identical.
package render

import (
	"fmt"
	"strings"
	"time"

	"acadforms/internal/forms"
	"acadforms/internal/schema"
)

// Placeholder is the fixed stand-in for an unanswered field. It must never
// be confused with an empty string: an unanswered field always renders as
// this token, in every renderer.
const Placeholder = "______________________"

// Fixed captions shared by the export renderers.
const (
	SignatureCaption = "Signature of Applicant"
	CouncilCaption   = "For exclusive use of the Technical Council"
)

// DisplayValue resolves what a renderer should print for a field: the entered
// value, or the placeholder when the field is unanswered or blank. Header
// fields carry no value slot and always resolve to the empty string.
func DisplayValue(values forms.Values, field schema.Field) string {
	if field.Type == schema.FieldHeader {
		return ""
	}
	val, ok := values.Get(field.ID)
	if !ok || val == "" {
		return Placeholder
	}
	return val
}

// LongDate formats the signature date in the long form shared verbatim by
// the print and flow renderers, e.g. "2 January 2026".
func LongDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// FileName builds the deterministic artifact name for an exported record:
// spaces in the template name become underscores, followed by the record id
// and extension.
func FileName(templateName, recordID, ext string) string {
	name := strings.ReplaceAll(templateName, " ", "_")
	return fmt.Sprintf("%s_%s.%s", name, recordID, ext)
}
