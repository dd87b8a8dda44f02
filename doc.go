// Package gaussdb resolves GaussDB type names to oids.
//
// A TypeResolver is created per connection. Built-in types such as int4 or
// jsonb resolve from a static table without touching the server. Other types
// are looked up through a CatalogQuerier and remembered in a
// TypeMetadataCache until Reset is called:
//
//	resolver, err := gaussdb.NewTypeResolver(gaussdb.DefaultConfig(), pgxcatalog.New(conn))
//	if err != nil {
//		return err
//	}
//	mood := resolver.LookupType(ctx, "mood", "public")
//	oid, err := mood.OID()
//
// A failed lookup does not return an error from LookupType. The error travels
// in the returned TypeMetadata and surfaces when an oid is read from it.
//
// The wire codecs live in the gaussdbtype package.
package gaussdb
