package flowdocx

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
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

func generalPetition(t *testing.T) *schema.Template {
	t.Helper()
	tpl, err := schema.Default().Get("general_petition")
	require.NoError(t, err)
	return tpl
}

// documentXML unpacks word/document.xml from a rendered artifact.
func documentXML(t *testing.T, artifact []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(artifact), int64(len(artifact)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatal("word/document.xml not found in artifact")
	return ""
}

func TestRenderPreservesSectionAndFieldOrder(t *testing.T) {
	tpl := generalPetition(t)
	out, err := Render(tpl, forms.Values{"fullName": "Ana Ruiz"}, fixedAt)
	require.NoError(t, err)

	doc := documentXML(t, out)

	// The ordered (section title, field label) sequence must match the
	// template declaration, same as the print renderer.
	last := -1
	for _, sec := range tpl.Sections {
		idx := strings.Index(doc, strings.ToUpper(sec.Title))
		require.GreaterOrEqualf(t, idx, 0, "banner for %q missing", sec.Title)
		require.Greaterf(t, idx, last, "banner for %q out of order", sec.Title)
		last = idx
		for _, f := range sec.Fields {
			idx = strings.Index(doc, f.Label+":")
			require.GreaterOrEqualf(t, idx, 0, "label for %q missing", f.ID)
			require.Greaterf(t, idx, last, "label for %q out of order", f.ID)
			last = idx
		}
	}

	assert.Contains(t, doc, "Ana Ruiz")
}

func TestRenderUnansweredFieldsUsePlaceholder(t *testing.T) {
	tpl := generalPetition(t)
	out, err := Render(tpl, forms.Values{}, fixedAt)
	require.NoError(t, err)

	doc := documentXML(t, out)
	var want int
	for _, sec := range tpl.Sections {
		for _, f := range sec.Fields {
			if f.Type != schema.FieldHeader {
				want++
			}
		}
	}
	// Count only runs whose text is exactly the placeholder token. Longer
	// underscore runs (the signature rule) contain it as a substring and
	// must not be counted.
	assert.Equal(t, want, strings.Count(doc, ">"+render.Placeholder+"<"))
}

func TestRenderContentIsDeterministic(t *testing.T) {
	tpl := generalPetition(t)
	values := forms.Values{"fullName": "Ana Ruiz"}

	a, err := Render(tpl, values, fixedAt)
	require.NoError(t, err)
	b, err := Render(tpl, values, fixedAt)
	require.NoError(t, err)

	// The whole artifact must be byte-identical, not just the document
	// part: entry order and timestamps are pinned by the packer.
	assert.True(t, bytes.Equal(a, b), "expected byte-identical artifacts for identical input")

	zr, err := zip.NewReader(bytes.NewReader(a), int64(len(a)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.True(t, sort.StringsAreSorted(names), "expected archive entries in name order, got %v", names)
}

func TestRenderClosingBlock(t *testing.T) {
	out, err := Render(generalPetition(t), forms.Values{}, fixedAt)
	require.NoError(t, err)

	doc := documentXML(t, out)
	assert.Contains(t, doc, render.SignatureCaption)
	assert.Contains(t, doc, "Date: 5 March 2026")
	assert.Contains(t, doc, strings.ToUpper(render.CouncilCaption))
	assert.Contains(t, doc, "Approved by:")
	assert.Contains(t, doc, "Observations:")
}

func TestRenderNilTemplate(t *testing.T) {
	_, err := Render(nil, forms.Values{}, fixedAt)
	assert.Error(t, err)
}
