package gaussdb

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/pkg/errors"
)

// ErrTypeNotFound is returned by a CatalogQuerier when no type matches.
var ErrTypeNotFound = errors.New("type not found")

// CatalogQuerier looks up a type in the server's catalog. schema is empty
// when the type should be found through the search path. The argument order
// matches TypeResolver.LookupType.
type CatalogQuerier interface {
	LookupType(ctx context.Context, typeName, schema string) (oid, arrayOID uint32, err error)
}

// TypeResolver maps type names to oids for one connection. Built-in types are
// answered from a static table, everything else from the cache or, on a
// miss, the catalog. A TypeResolver is not safe for concurrent use.
type TypeResolver struct {
	cache         *TypeMetadataCache
	catalog       CatalogQuerier
	log           levelLogger
	serverVersion *semver.Version
}

// NewTypeResolver builds a resolver from config. catalog may be nil, in which
// case only built-in and seeded types resolve.
func NewTypeResolver(config *Config, catalog CatalogQuerier) (*TypeResolver, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	serverVersion, _ := config.serverVersion()

	level := config.LogLevel
	if level == 0 {
		level = LogLevelInfo
	}

	tr := &TypeResolver{
		cache:         NewTypeMetadataCache(),
		catalog:       catalog,
		log:           levelLogger{logger: config.Logger, level: level},
		serverVersion: serverVersion,
	}

	for _, seed := range config.Types {
		tr.cache.Store(NewTypeMetadataCacheKey(seed.Schema, seed.Name), seed.OID, seed.ArrayOID)
	}

	return tr, nil
}

// Cache returns the resolver's cache.
func (tr *TypeResolver) Cache() *TypeMetadataCache {
	return tr.cache
}

// LookupType resolves typeName in schema. schema may be empty. A failed
// lookup is not an error here: it is carried by the returned metadata and
// reported when its oids are read. Failures are not cached, so a later call
// asks the catalog again.
func (tr *TypeResolver) LookupType(ctx context.Context, typeName, schema string) gaussdbtype.TypeMetadata {
	if schema == "" || schema == "pg_catalog" {
		if bt, ok := gaussdbtype.LookupBuiltinType(typeName); ok && tr.builtinAvailable(bt) {
			return bt.Metadata()
		}
	}

	key := NewTypeMetadataCacheKey(schema, typeName)
	if tm, ok := tr.cache.Lookup(key); ok {
		return tm
	}

	if tr.log.enabled(LogLevelDebug) {
		tr.log.log(ctx, LogLevelDebug, "type metadata cache miss", map[string]any{"schema": schema, "typeName": typeName})
	}

	failed := gaussdbtype.FailedTypeMetadata(&gaussdbtype.FailedLookupError{TypeName: typeName, Schema: schema})

	if tr.catalog == nil {
		tr.log.log(ctx, LogLevelWarn, "type lookup failed", map[string]any{"schema": schema, "typeName": typeName, "err": "no catalog configured"})
		return failed
	}

	oid, arrayOID, err := tr.catalog.LookupType(ctx, typeName, schema)
	if err == nil && oid == 0 {
		err = ErrTypeNotFound
	}
	if err != nil {
		tr.log.log(ctx, LogLevelWarn, "type lookup failed", map[string]any{"schema": schema, "typeName": typeName, "err": err})
		return failed
	}

	tr.cache.Store(key, oid, arrayOID)
	return gaussdbtype.NewTypeMetadata(oid, arrayOID)
}

// Reset forgets every cached type, including seeded ones.
func (tr *TypeResolver) Reset() {
	n := tr.cache.Len()
	tr.cache.Clear()
	tr.log.log(context.Background(), LogLevelInfo, "type metadata cache cleared", map[string]any{"entries": n})
}

func (tr *TypeResolver) builtinAvailable(bt gaussdbtype.BuiltinType) bool {
	if bt.MinServerVersion == "" || tr.serverVersion == nil {
		return true
	}
	minVersion, err := semver.NewVersion(bt.MinServerVersion)
	if err != nil {
		return false
	}
	return !tr.serverVersion.LessThan(minVersion)
}
