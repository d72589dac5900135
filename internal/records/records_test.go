package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acadforms/internal/forms"
	"acadforms/internal/schema"
)

var fixedAt = time.Date(2026, time.March, 5, 16, 45, 12, 0, time.UTC)

func TestCreate(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	rec, err := Create(tpl, forms.Values{"fullName": "Ana Ruiz"}, fixedAt)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, tpl.ID, rec.TemplateID)
	assert.Equal(t, tpl.Name, rec.TemplateName)
	assert.Equal(t, StatusDraft, rec.Status)
	assert.Equal(t, "2026-03-05", rec.CreatedAt, "date component only")
	assert.Equal(t, "Ana Ruiz", rec.Applicant)
}

func TestCreateApplicantFallback(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	rec, err := Create(tpl, forms.Values{"subjectLine": "Extension request"}, fixedAt)
	require.NoError(t, err)
	assert.Equal(t, FallbackApplicant, rec.Applicant)

	// A present-but-blank name also falls back.
	rec, err = Create(tpl, forms.Values{"fullName": ""}, fixedAt)
	require.NoError(t, err)
	assert.Equal(t, FallbackApplicant, rec.Applicant)
}

func TestCreateNilTemplate(t *testing.T) {
	rec, err := Create(nil, forms.Values{"fullName": "Ana Ruiz"}, fixedAt)
	assert.ErrorIs(t, err, ErrNilTemplate)
	assert.Nil(t, rec)
}

func TestCreateSnapshotsValues(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	values := forms.Values{"fullName": "Ana Ruiz"}
	rec, err := Create(tpl, values, fixedAt)
	require.NoError(t, err)

	values.Set("fullName", "Someone Else")
	got, _ := rec.Data.Get("fullName")
	assert.Equal(t, "Ana Ruiz", got)
}

func TestCreateUniqueIDs(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	a, err := Create(tpl, forms.Values{}, fixedAt)
	require.NoError(t, err)
	b, err := Create(tpl, forms.Values{}, fixedAt)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
