package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"acadforms/internal/forms"
	"acadforms/internal/schema"
)

func TestDisplayValue(t *testing.T) {
	field := schema.Field{ID: "fullName", Label: "Full Name", Type: schema.FieldText}

	tests := []struct {
		name   string
		values forms.Values
		want   string
	}{
		{"answered", forms.Values{"fullName": "Ana Ruiz"}, "Ana Ruiz"},
		{"unanswered", forms.Values{}, Placeholder},
		{"answered blank", forms.Values{"fullName": ""}, Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayValue(tt.values, field))
		})
	}
}

func TestDisplayValueHeaderField(t *testing.T) {
	field := schema.Field{ID: "h", Label: "Part A", Type: schema.FieldHeader}
	assert.Empty(t, DisplayValue(forms.Values{"h": "ignored"}, field))
}

func TestLongDate(t *testing.T) {
	at := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "5 March 2026", LongDate(at))
}

func TestFileName(t *testing.T) {
	got := FileName("General Petition to the Technical Council", "abc-123", "pdf")
	assert.Equal(t, "General_Petition_to_the_Technical_Council_abc-123.pdf", got)
}
