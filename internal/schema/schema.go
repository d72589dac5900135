// Package schema holds the declarative catalog of request templates.
//
// A template is an ordered list of sections, each an ordered list of typed
// fields. The order declared here is the rendering order for every renderer
// in the system; nothing downstream is allowed to reorder it.
package schema

import (
	"errors"
	"fmt"
)

// FieldType is the closed set of input kinds a field can take. The renderers
// dispatch on it statically; there is no runtime name resolution.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldCurrency FieldType = "currency"
	FieldHeader   FieldType = "header"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldDate, FieldEmail,
		FieldNumber, FieldSelect, FieldCurrency, FieldHeader:
		return true
	}
	return false
}

// Field is a single labeled input slot.
type Field struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"` // required for select fields
	Required    bool      `json:"required,omitempty"`
	LayoutWidth int       `json:"layoutWidth"` // 1 = half row, 2 = full row
	HelpText    string    `json:"helpText,omitempty"`
}

// Section groups fields under a titled banner.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Template describes one document type end to end.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Sections    []Section `json:"sections"`
}

// FieldByID returns the field with the given id, searching sections in order.
func (t *Template) FieldByID(id string) (*Field, bool) {
	for si := range t.Sections {
		for fi := range t.Sections[si].Fields {
			if t.Sections[si].Fields[fi].ID == id {
				return &t.Sections[si].Fields[fi], true
			}
		}
	}
	return nil, false
}

// Validate checks the structural invariants: field ids unique within the
// template, known field types, and non-empty options on select fields.
func (t *Template) Validate() error {
	seen := make(map[string]struct{})
	for _, sec := range t.Sections {
		for _, f := range sec.Fields {
			if !f.Type.Valid() {
				return fmt.Errorf("template %s: field %s has unknown type %q", t.ID, f.ID, f.Type)
			}
			if f.Type == FieldSelect && len(f.Options) == 0 {
				return fmt.Errorf("template %s: select field %s has no options", t.ID, f.ID)
			}
			if _, dup := seen[f.ID]; dup {
				return fmt.Errorf("template %s: duplicate field id %q", t.ID, f.ID)
			}
			seen[f.ID] = struct{}{}
		}
	}
	return nil
}

// ErrTemplateNotFound is returned when a catalog lookup misses. A document
// record referencing an unknown template cannot be rendered at all.
var ErrTemplateNotFound = errors.New("template not found")

// Catalog is a read-only, ordered collection of templates.
type Catalog struct {
	templates []Template
	byID      map[string]*Template
}

// NewCatalog builds a catalog from the given templates.
func NewCatalog(templates []Template) *Catalog {
	c := &Catalog{
		templates: templates,
		byID:      make(map[string]*Template, len(templates)),
	}
	for i := range c.templates {
		c.byID[c.templates[i].ID] = &c.templates[i]
	}
	return c
}

// Get looks up a template by id.
func (c *Catalog) Get(id string) (*Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return t, nil
}

// List returns all templates in declaration order.
func (c *Catalog) List() []Template {
	return c.templates
}

// folderMapping routes generated artifacts into per-type archive folders.
var folderMapping = map[string]string{
	"general_petition":          "General",
	"academic_event":            "Events",
	"tutorial_committee":        "Committee",
	"institutional_endorsement": "Endorsements",
	"academic_viaticos":         "Travel",
	"student_endorsement":       "StudentEndorsements",
	"student_external_course":   "ExternalCourses",
	"student_field_trip":        "FieldTrips",
}

// FolderFor maps a template id to its archive folder. Unknown ids fall back
// to the General folder rather than failing an upload.
func FolderFor(templateID string) string {
	if folder, ok := folderMapping[templateID]; ok {
		return folder
	}
	return "General"
}
