package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValue(t *testing.T) {
	var dest string
	e := &EnumValue{Name: "format", Destination: &dest, Enum: []string{"a", "b"}, Value: "a"}
	assert.Equal(t, "a", e.String())
	require.NoError(t, e.Set("b"))
	assert.Equal(t, "b", dest)
	assert.Equal(t, "b", e.String())
	require.ErrorContains(t, e.Set("c"), "allowed values are a, b")
	assert.Equal(t, "b", dest)
}

func TestEnumValue_GenericFlagSetsDefault(t *testing.T) {
	var dest string
	f := EnumValue{Name: "format", Destination: &dest, Enum: []string{"x", "y"}, Value: "y"}.GenericFlag()
	assert.Equal(t, "y", dest)
	assert.Equal(t, "format", f.Name)
}
