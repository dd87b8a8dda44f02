package gaussdb_test

import (
	"testing"

	"github.com/gaussdb-go/gaussdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMetadataCacheStoreAndLookup(t *testing.T) {
	cache := gaussdb.NewTypeMetadataCache()
	assert.True(t, cache.IsEmpty())

	key := gaussdb.NewTypeMetadataCacheKey("", "int4")
	_, ok := cache.Lookup(key)
	assert.False(t, ok)

	cache.Store(key, 23, 1007)
	assert.Equal(t, 1, cache.Len())
	assert.False(t, cache.IsEmpty())

	tm, ok := cache.Lookup(key)
	require.True(t, ok)
	oid, err := tm.OID()
	require.NoError(t, err)
	assert.Equal(t, uint32(23), oid)
	arrayOID, err := tm.ArrayOID()
	require.NoError(t, err)
	assert.Equal(t, uint32(1007), arrayOID)

	cache.Store(key, 24, 1008)
	assert.Equal(t, 1, cache.Len())
	tm, _ = cache.Lookup(key)
	oid, _ = tm.OID()
	assert.Equal(t, uint32(24), oid)
}

func TestTypeMetadataCacheKeySchemaMatters(t *testing.T) {
	cache := gaussdb.NewTypeMetadataCache()
	cache.Store(gaussdb.NewTypeMetadataCacheKey("app", "mood"), 16385, 16384)

	_, ok := cache.Lookup(gaussdb.NewTypeMetadataCacheKey("", "mood"))
	assert.False(t, ok)
	_, ok = cache.Lookup(gaussdb.NewTypeMetadataCacheKey("other", "mood"))
	assert.False(t, ok)
	_, ok = cache.Lookup(gaussdb.TypeMetadataCacheKey{Schema: "app", TypeName: "mood"})
	assert.True(t, ok)
}

func TestTypeMetadataCacheClear(t *testing.T) {
	cache := gaussdb.NewTypeMetadataCache()
	cache.Store(gaussdb.NewTypeMetadataCacheKey("", "a"), 1, 2)
	cache.Store(gaussdb.NewTypeMetadataCacheKey("", "b"), 3, 4)
	require.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.True(t, cache.IsEmpty())
	_, ok := cache.Lookup(gaussdb.NewTypeMetadataCacheKey("", "a"))
	assert.False(t, ok)
}

func TestTypeMetadataCacheZeroValue(t *testing.T) {
	var cache gaussdb.TypeMetadataCache
	_, ok := cache.Lookup(gaussdb.NewTypeMetadataCacheKey("", "a"))
	assert.False(t, ok)
	cache.Clear()

	cache.Store(gaussdb.NewTypeMetadataCacheKey("", "a"), 1, 2)
	assert.Equal(t, 1, cache.Len())
}
