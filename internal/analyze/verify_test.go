package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxyns/bindgen-bridge/internal/mapping"
)

// The tests verify against the stdlib strings package: it is always
// available and carries well-known struct types.

func TestVerifyBindings_AllPresent(t *testing.T) {
	m := mapping.NewNameMappings()
	m.RecordType("Builder", mapping.CompKindStruct)
	m.RecordType("Reader", mapping.CompKindStruct)

	diags, err := VerifyBindings("strings", m)
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())
}

func TestVerifyBindings_MissingType(t *testing.T) {
	m := mapping.NewNameMappings()
	m.RecordType("NoSuchBinding", mapping.CompKindStruct)

	diags, err := VerifyBindings("strings", m)
	require.NoError(t, err)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "missing_binding", diags.Errors[0].Code)
	assert.Equal(t, "NoSuchBinding", diags.Errors[0].TypeName)
}

func TestVerifyBindings_NotAType(t *testing.T) {
	m := mapping.NewNameMappings()
	// strings.Clone is a function, not a type.
	m.RecordType("Clone", mapping.CompKindStruct)

	diags, err := VerifyBindings("strings", m)
	require.NoError(t, err)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "not_a_type", diags.Errors[0].Code)
}

func TestVerifyBindings_BadPattern(t *testing.T) {
	m := mapping.NewNameMappings()

	_, err := VerifyBindings("./no/such/package/anywhere", m)
	assert.Error(t, err)
}
