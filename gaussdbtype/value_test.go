package gaussdbtype_test

import (
	"testing"

	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	v := gaussdbtype.NewValue([]byte("abcd"), gaussdbtype.TextOID)
	assert.False(t, v.IsNull())
	assert.False(t, v.IsEmpty())
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, uint32(gaussdbtype.TextOID), v.OID())
	assert.Equal(t, "Value{oid: 25, bytes: 4 bytes}", v.String())

	null := gaussdbtype.NullValue(gaussdbtype.Int4OID)
	assert.True(t, null.IsNull())
	assert.False(t, null.IsEmpty())
	assert.Equal(t, -1, null.Len())
	assert.Nil(t, null.Bytes())
	assert.Equal(t, "Value{oid: 23, bytes: NULL}", null.String())

	empty := gaussdbtype.NewValue([]byte{}, gaussdbtype.TextOID)
	assert.False(t, empty.IsNull())
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
}

func TestValueOwned(t *testing.T) {
	row := []byte{1, 2, 3}
	v := gaussdbtype.NewValue(row, gaussdbtype.ByteaOID)
	owned := v.Owned()

	row[0] = 0xff
	assert.Equal(t, byte(0xff), v.Bytes()[0])
	assert.Equal(t, []byte{1, 2, 3}, owned.Bytes())
	assert.Equal(t, v.OID(), owned.OID())

	assert.True(t, gaussdbtype.NullValue(gaussdbtype.ByteaOID).Owned().IsNull())
}

func TestValueWithOID(t *testing.T) {
	v := gaussdbtype.NewValue([]byte{0, 0, 0, 1}, gaussdbtype.Int4ArrayOID).WithOID(gaussdbtype.Int4OID)
	n, err := gaussdbtype.DecodeInt4(v)
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
	assert.Equal(t, uint32(gaussdbtype.Int4OID), v.OID())
}
