package gaussdb

import (
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
)

// TypeMetadataCacheKey identifies a type by name and optional schema. An empty
// Schema means the type was looked up without one.
type TypeMetadataCacheKey struct {
	Schema   string
	TypeName string
}

func NewTypeMetadataCacheKey(schema, typeName string) TypeMetadataCacheKey {
	return TypeMetadataCacheKey{Schema: schema, TypeName: typeName}
}

type cachedOIDs struct {
	oid      uint32
	arrayOID uint32
}

// TypeMetadataCache remembers resolved type oids for the lifetime of a
// connection. Only successful lookups are stored. It is not safe for
// concurrent use. The zero value is ready to use.
type TypeMetadataCache struct {
	entries map[TypeMetadataCacheKey]cachedOIDs
}

func NewTypeMetadataCache() *TypeMetadataCache {
	return &TypeMetadataCache{entries: make(map[TypeMetadataCacheKey]cachedOIDs)}
}

// Lookup returns the metadata stored for key.
func (c *TypeMetadataCache) Lookup(key TypeMetadataCacheKey) (gaussdbtype.TypeMetadata, bool) {
	e, ok := c.entries[key]
	if !ok {
		return gaussdbtype.TypeMetadata{}, false
	}
	return gaussdbtype.NewTypeMetadata(e.oid, e.arrayOID), true
}

// Store records the oids of key, replacing any previous entry.
func (c *TypeMetadataCache) Store(key TypeMetadataCacheKey, oid, arrayOID uint32) {
	if c.entries == nil {
		c.entries = make(map[TypeMetadataCacheKey]cachedOIDs)
	}
	c.entries[key] = cachedOIDs{oid: oid, arrayOID: arrayOID}
}

// Clear removes all entries. Types may have been dropped and recreated with
// new oids, e.g. after a migration, so the cache must be cleared when that
// happens.
func (c *TypeMetadataCache) Clear() {
	for k := range c.entries {
		delete(c.entries, k)
	}
}

func (c *TypeMetadataCache) Len() int {
	return len(c.entries)
}

func (c *TypeMetadataCache) IsEmpty() bool {
	return len(c.entries) == 0
}
