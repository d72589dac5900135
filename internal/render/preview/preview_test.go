package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acadforms/internal/forms"
	"acadforms/internal/render"
	"acadforms/internal/schema"
)

var fixedAt = time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

func TestRenderMirrorsExportOrder(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	out, err := Render(tpl, forms.Values{"fullName": "Ana Ruiz"}, fixedAt)
	require.NoError(t, err)

	doc := string(out)
	last := -1
	for _, sec := range tpl.Sections {
		idx := strings.Index(doc, strings.ToUpper(sec.Title))
		require.GreaterOrEqualf(t, idx, 0, "banner for %q missing", sec.Title)
		require.Greater(t, idx, last)
		last = idx
	}

	assert.Contains(t, doc, "Ana Ruiz")
	assert.Contains(t, doc, render.Placeholder)
	assert.Contains(t, doc, render.SignatureCaption)
	assert.Contains(t, doc, "Date: 5 March 2026")
}

func TestRenderEscapesUserInput(t *testing.T) {
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)

	out, err := Render(tpl, forms.Values{"fullName": `<script>alert("x")</script>`}, fixedAt)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>")
}

func TestRenderNilTemplate(t *testing.T) {
	_, err := Render(nil, forms.Values{}, fixedAt)
	assert.Error(t, err)
}
