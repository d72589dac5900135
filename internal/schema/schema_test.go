package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.List())

	for _, tpl := range c.List() {
		tpl := tpl
		t.Run(tpl.ID, func(t *testing.T) {
			require.NoError(t, tpl.Validate())
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Sections)
		})
	}
}

func TestCatalogGet(t *testing.T) {
	c := Default()

	tpl, err := c.Get("general_petition")
	require.NoError(t, err)
	assert.Equal(t, "General Petition to the Technical Council", tpl.Name)

	_, err = c.Get("no_such_template")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSectionOrderPreserved(t *testing.T) {
	c := Default()
	tpl, err := c.Get("general_petition")
	require.NoError(t, err)

	var titles []string
	for _, sec := range tpl.Sections {
		titles = append(titles, sec.Title)
	}
	assert.Equal(t, []string{
		"General Information",
		"I. Applicant Information",
		"II. Subject of the Petition",
		"III. Full Description",
		"IV. Required Resources",
		"V. Justification",
		"VI. Expected Benefit",
	}, titles)
}

func TestFieldByID(t *testing.T) {
	c := Default()
	tpl, err := c.Get("general_petition")
	require.NoError(t, err)

	f, ok := tpl.FieldByID("fullName")
	require.True(t, ok)
	assert.Equal(t, "Full Name", f.Label)
	assert.Equal(t, FieldText, f.Type)

	_, ok = tpl.FieldByID("missing")
	assert.False(t, ok)
}

func TestSelectFieldsHaveOptions(t *testing.T) {
	for _, tpl := range Default().List() {
		for _, sec := range tpl.Sections {
			for _, f := range sec.Fields {
				if f.Type == FieldSelect {
					assert.NotEmptyf(t, f.Options, "%s/%s", tpl.ID, f.ID)
				}
			}
		}
	}
}

func TestFolderFor(t *testing.T) {
	assert.Equal(t, "General", FolderFor("general_petition"))
	assert.Equal(t, "Travel", FolderFor("academic_viaticos"))
	assert.Equal(t, "General", FolderFor("unknown"))
}

func TestFieldTypeValid(t *testing.T) {
	assert.True(t, FieldCurrency.Valid())
	assert.True(t, FieldHeader.Valid())
	assert.False(t, FieldType("checkbox").Valid())
}
