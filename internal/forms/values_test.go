package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsentVersusEmpty(t *testing.T) {
	v := Values{"answered": ""}

	val, ok := v.Get("answered")
	assert.True(t, ok)
	assert.Empty(t, val)

	_, ok = v.Get("never")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	v := Values{"a": "1"}
	c := v.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	val, _ := v.Get("a")
	assert.Equal(t, "1", val)
	assert.False(t, v.Has("b"))
}

func TestCloneNil(t *testing.T) {
	var v Values
	c := v.Clone()
	assert.NotNil(t, c)
	assert.Empty(t, c)
}
