// Package records builds the persisted snapshot of a filled template.
package records

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"acadforms/internal/forms"
	"acadforms/internal/schema"
)

// Status of a document record. Transitions past Draft are owned by the
// council's review workflow; this service only ever creates Drafts.
type Status string

const (
	StatusDraft         Status = "Draft"
	StatusPendingReview Status = "Pending Review"
	StatusApproved      Status = "Approved"
	StatusRejected      Status = "Rejected"
)

// applicantFieldID is the well-known field the applicant name is read from.
const applicantFieldID = "fullName"

// FallbackApplicant is used when the template carries no applicant name.
const FallbackApplicant = "Current User"

// ErrNilTemplate is returned by Create when no template is given. A record
// can never exist without the template it snapshots.
var ErrNilTemplate = errors.New("record requires a template")

// Record is an immutable snapshot of a submitted form. Exports may be
// produced from it any number of times; the snapshot never changes.
type Record struct {
	ID           string      `json:"id"`
	TemplateID   string      `json:"template_id"`
	TemplateName string      `json:"template_name"`
	Data         forms.Values `json:"data"`
	Status       Status      `json:"status"`
	CreatedAt    string      `json:"created_at"` // date only, ISO 8601
	Applicant    string      `json:"applicant"`
}

// Create assembles a new Draft record from a template and the entered
// values. The values are snapshotted by copy so later edits to the form do
// not leak into the record.
func Create(tpl *schema.Template, values forms.Values, at time.Time) (*Record, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}

	applicant := FallbackApplicant
	if name, ok := values.Get(applicantFieldID); ok && name != "" {
		applicant = name
	}

	return &Record{
		ID:           uuid.New().String(),
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Data:         values.Clone(),
		Status:       StatusDraft,
		CreatedAt:    at.Format("2006-01-02"),
		Applicant:    applicant,
	}, nil
}
