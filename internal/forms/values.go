// Package forms holds the user-entered data for one document instance.
package forms

// Values maps field ids to entered values. The mapping is sparse: an absent
// key means the field was never answered, which is distinct from a field
// answered with the empty string. Renderers show both as the blank
// placeholder, but the distinction is preserved here.
type Values map[string]string

// Get returns the entered value and whether the field was ever answered.
func (v Values) Get(fieldID string) (string, bool) {
	val, ok := v[fieldID]
	return val, ok
}

// Set records an answer for a field.
func (v Values) Set(fieldID, value string) {
	v[fieldID] = value
}

// Has reports whether the field was answered at all.
func (v Values) Has(fieldID string) bool {
	_, ok := v[fieldID]
	return ok
}

// Clone returns an independent copy. Renderers receive clones so no renderer
// can observe mutations made by another caller.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
