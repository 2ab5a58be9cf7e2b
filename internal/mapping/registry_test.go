package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordType_Idempotent(t *testing.T) {
	m := NewNameMappings()

	first := m.RecordType("BmpCommonHdr", CompKindStruct)
	require.NotNil(t, first)
	assert.Equal(t, "BmpCommonHdr", first.InternalName)
	assert.Equal(t, CompKindStruct, first.Kind)
	assert.False(t, first.HasOriginalName())

	again := m.RecordType("BmpCommonHdr", CompKindStruct)
	assert.Same(t, first, again)
	assert.Equal(t, 1, m.Len())
}

func TestSetOriginalName(t *testing.T) {
	m := NewNameMappings()
	m.RecordType("BmpCommonHdr", CompKindStruct)

	err := m.SetOriginalName("BmpCommonHdr", "struct bmp_common_hdr")
	require.NoError(t, err)

	ct, ok := m.Lookup("BmpCommonHdr")
	require.True(t, ok)
	assert.Equal(t, "struct bmp_common_hdr", ct.OriginalName)

	// Same value again is a no-op.
	err = m.SetOriginalName("BmpCommonHdr", "struct bmp_common_hdr")
	assert.NoError(t, err)

	// A different value is a conflict, not an overwrite.
	err = m.SetOriginalName("BmpCommonHdr", "struct bmp_peer_hdr")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "BmpCommonHdr", conflict.Name)
	assert.Equal(t, "struct bmp_common_hdr", conflict.Existing)
	assert.Equal(t, "struct bmp_peer_hdr", conflict.Incoming)

	// The recorded value survives the conflicting write.
	ct, _ = m.Lookup("BmpCommonHdr")
	assert.Equal(t, "struct bmp_common_hdr", ct.OriginalName)
}

func TestSetOriginalName_UnknownType(t *testing.T) {
	m := NewNameMappings()

	err := m.SetOriginalName("Nope", "struct nope")
	assert.Error(t, err)
}

func TestLookup_Missing(t *testing.T) {
	m := NewNameMappings()

	_, ok := m.Lookup("Nope")
	assert.False(t, ok)
}
