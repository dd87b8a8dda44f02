package gaussdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gaussdb-go/gaussdb"
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogEntry struct {
	oid      uint32
	arrayOID uint32
}

type fakeCatalog struct {
	types map[gaussdb.TypeMetadataCacheKey]catalogEntry
	err   error
	calls int
}

func (c *fakeCatalog) LookupType(ctx context.Context, typeName, schema string) (uint32, uint32, error) {
	c.calls++
	if c.err != nil {
		return 0, 0, c.err
	}
	e, ok := c.types[gaussdb.NewTypeMetadataCacheKey(schema, typeName)]
	if !ok {
		return 0, 0, gaussdb.ErrTypeNotFound
	}
	return e.oid, e.arrayOID, nil
}

type logEntry struct {
	level gaussdb.LogLevel
	msg   string
	data  map[string]any
}

type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Log(ctx context.Context, level gaussdb.LogLevel, msg string, data map[string]any) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, data: data})
}

func newResolver(t *testing.T, config *gaussdb.Config, catalog gaussdb.CatalogQuerier) *gaussdb.TypeResolver {
	t.Helper()
	tr, err := gaussdb.NewTypeResolver(config, catalog)
	require.NoError(t, err)
	return tr
}

func TestLookupTypeBuiltin(t *testing.T) {
	catalog := &fakeCatalog{}
	tr := newResolver(t, nil, catalog)

	for _, schema := range []string{"", "pg_catalog"} {
		tm := tr.LookupType(context.Background(), "int4", schema)
		oid, err := tm.OID()
		require.NoError(t, err)
		assert.Equal(t, uint32(23), oid)
		arrayOID, err := tm.ArrayOID()
		require.NoError(t, err)
		assert.Equal(t, uint32(1007), arrayOID)
	}

	assert.Equal(t, 0, catalog.calls)
	assert.True(t, tr.Cache().IsEmpty())
}

func TestLookupTypeBuiltinNameInOtherSchemaGoesToCatalog(t *testing.T) {
	catalog := &fakeCatalog{types: map[gaussdb.TypeMetadataCacheKey]catalogEntry{
		{Schema: "app", TypeName: "int4"}: {oid: 50000, arrayOID: 50001},
	}}
	tr := newResolver(t, nil, catalog)

	oid, err := tr.LookupType(context.Background(), "int4", "app").OID()
	require.NoError(t, err)
	assert.Equal(t, uint32(50000), oid)
	assert.Equal(t, 1, catalog.calls)
}

func TestLookupTypeCachesCatalogResult(t *testing.T) {
	catalog := &fakeCatalog{types: map[gaussdb.TypeMetadataCacheKey]catalogEntry{
		{Schema: "", TypeName: "mood"}: {oid: 16385, arrayOID: 16384},
	}}
	tr := newResolver(t, nil, catalog)

	for i := 0; i < 3; i++ {
		tm := tr.LookupType(context.Background(), "mood", "")
		oid, err := tm.OID()
		require.NoError(t, err)
		assert.Equal(t, uint32(16385), oid)

		oid, err = tm.ArrayMetadata().OID()
		require.NoError(t, err)
		assert.Equal(t, uint32(16384), oid)
	}

	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, 1, tr.Cache().Len())
}

func TestLookupTypeFailureIsDeferredAndNotCached(t *testing.T) {
	catalog := &fakeCatalog{}
	tr := newResolver(t, nil, catalog)

	tm := tr.LookupType(context.Background(), "missing", "app")
	assert.Equal(t, 1, catalog.calls)

	_, err := tm.OID()
	require.Error(t, err)
	assert.True(t, errors.Is(err, gaussdbtype.ErrTypeLookupFailed))
	var fle *gaussdbtype.FailedLookupError
	require.True(t, errors.As(err, &fle))
	assert.Equal(t, "missing", fle.TypeName)
	assert.Equal(t, "app", fle.Schema)

	_, err = tm.ArrayOID()
	assert.Error(t, err)

	assert.True(t, tr.Cache().IsEmpty())

	tr.LookupType(context.Background(), "missing", "app")
	assert.Equal(t, 2, catalog.calls)
}

func TestLookupTypeCatalogError(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection reset")}
	logger := &recordingLogger{}
	tr := newResolver(t, &gaussdb.Config{LogLevel: gaussdb.LogLevelWarn, Logger: logger}, catalog)

	_, err := tr.LookupType(context.Background(), "mood", "").OID()
	assert.True(t, errors.Is(err, gaussdbtype.ErrTypeLookupFailed))

	require.Len(t, logger.entries, 1)
	assert.Equal(t, gaussdb.LogLevelWarn, logger.entries[0].level)
	assert.Equal(t, "type lookup failed", logger.entries[0].msg)
	assert.Equal(t, catalog.err, logger.entries[0].data["err"])
}

func TestLookupTypeZeroOIDIsFailure(t *testing.T) {
	catalog := &fakeCatalog{types: map[gaussdb.TypeMetadataCacheKey]catalogEntry{
		{TypeName: "ghost"}: {},
	}}
	tr := newResolver(t, nil, catalog)

	_, err := tr.LookupType(context.Background(), "ghost", "").OID()
	assert.True(t, errors.Is(err, gaussdbtype.ErrTypeLookupFailed))
	assert.True(t, tr.Cache().IsEmpty())
}

func TestLookupTypeWithoutCatalog(t *testing.T) {
	tr := newResolver(t, nil, nil)

	_, err := tr.LookupType(context.Background(), "text", "").OID()
	require.NoError(t, err)

	_, err = tr.LookupType(context.Background(), "mood", "").OID()
	assert.True(t, errors.Is(err, gaussdbtype.ErrTypeLookupFailed))
}

func TestResolverSeedsAndReset(t *testing.T) {
	config := gaussdb.DefaultConfig()
	config.Types = []gaussdb.TypeSeed{{Schema: "app", Name: "mood", OID: 16385, ArrayOID: 16384}}
	logger := &recordingLogger{}
	config.Logger = logger

	catalog := &fakeCatalog{}
	tr := newResolver(t, config, catalog)

	oid, err := tr.LookupType(context.Background(), "mood", "app").OID()
	require.NoError(t, err)
	assert.Equal(t, uint32(16385), oid)
	assert.Equal(t, 0, catalog.calls)

	tr.Reset()
	assert.True(t, tr.Cache().IsEmpty())
	require.Len(t, logger.entries, 1)
	assert.Equal(t, gaussdb.LogLevelInfo, logger.entries[0].level)
	assert.Equal(t, 1, logger.entries[0].data["entries"])

	_, err = tr.LookupType(context.Background(), "mood", "app").OID()
	assert.Error(t, err)
	assert.Equal(t, 1, catalog.calls)
}

func TestResolverLogsCacheMissAtDebug(t *testing.T) {
	logger := &recordingLogger{}
	catalog := &fakeCatalog{types: map[gaussdb.TypeMetadataCacheKey]catalogEntry{
		{TypeName: "mood"}: {oid: 16385, arrayOID: 16384},
	}}
	tr := newResolver(t, &gaussdb.Config{LogLevel: gaussdb.LogLevelDebug, Logger: logger}, catalog)

	tr.LookupType(context.Background(), "mood", "")
	tr.LookupType(context.Background(), "mood", "")

	require.Len(t, logger.entries, 1)
	assert.Equal(t, gaussdb.LogLevelDebug, logger.entries[0].level)
	assert.Equal(t, "type metadata cache miss", logger.entries[0].msg)
	assert.Equal(t, map[string]any{"schema": "", "typeName": "mood"}, logger.entries[0].data)
}

func TestResolverLogLevelFiltersDebug(t *testing.T) {
	logger := &recordingLogger{}
	catalog := &fakeCatalog{types: map[gaussdb.TypeMetadataCacheKey]catalogEntry{
		{TypeName: "mood"}: {oid: 16385, arrayOID: 16384},
	}}
	tr := newResolver(t, &gaussdb.Config{LogLevel: gaussdb.LogLevelInfo, Logger: logger}, catalog)

	tr.LookupType(context.Background(), "mood", "")
	assert.Empty(t, logger.entries)
}

func TestMultirangeBuiltinsAreVersionGated(t *testing.T) {
	catalog := &fakeCatalog{}

	modern := newResolver(t, &gaussdb.Config{ServerVersion: "14.2"}, catalog)
	oid, err := modern.LookupType(context.Background(), "int4multirange", "").OID()
	require.NoError(t, err)
	assert.Equal(t, uint32(gaussdbtype.Int4multirangeOID), oid)
	assert.Equal(t, 0, catalog.calls)

	legacy := newResolver(t, &gaussdb.Config{ServerVersion: "9.2.4"}, catalog)
	_, err = legacy.LookupType(context.Background(), "int4multirange", "").OID()
	assert.Error(t, err)
	assert.Equal(t, 1, catalog.calls)

	oid, err = legacy.LookupType(context.Background(), "int4range", "").OID()
	require.NoError(t, err)
	assert.Equal(t, uint32(gaussdbtype.Int4rangeOID), oid)

	unknown := newResolver(t, &gaussdb.Config{}, catalog)
	_, err = unknown.LookupType(context.Background(), "int4multirange", "").OID()
	require.NoError(t, err)
}

func TestNewTypeResolverRejectsBadConfig(t *testing.T) {
	_, err := gaussdb.NewTypeResolver(&gaussdb.Config{ServerVersion: "not a version"}, nil)
	assert.Error(t, err)

	_, err = gaussdb.NewTypeResolver(&gaussdb.Config{Types: []gaussdb.TypeSeed{{Name: "mood"}}}, nil)
	assert.Error(t, err)
}
