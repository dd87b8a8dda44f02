// Package pgxcatalog looks up type oids in the server catalog through a pgx
// connection.
package pgxcatalog

import (
	"context"

	"github.com/gaussdb-go/gaussdb"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// undefinedObject is the SQLSTATE of a failed regtype cast.
const undefinedObject = "42704"

const (
	lookupInSchemaSQL = `select t.oid, t.typarray
from pg_catalog.pg_type t
join pg_catalog.pg_namespace n on n.oid = t.typnamespace
where t.typname = $1 and n.nspname = $2`

	// The regtype cast resolves the name through the search path the same way
	// the server does for an unqualified type in a statement.
	lookupInSearchPathSQL = `select t.oid, t.typarray
from pg_catalog.pg_type t
where t.oid = $1::text::regtype::oid`
)

// Querier is satisfied by *pgx.Conn, pgx.Tx and *pgxpool.Pool.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Catalog implements gaussdb.CatalogQuerier.
type Catalog struct {
	conn Querier
}

func New(conn Querier) *Catalog {
	return &Catalog{conn: conn}
}

// LookupType returns the oid and array oid of typeName. With an empty schema
// the type is found through the connection's search path.
func (c *Catalog) LookupType(ctx context.Context, typeName, schema string) (uint32, uint32, error) {
	var row pgx.Row
	if schema == "" {
		row = c.conn.QueryRow(ctx, lookupInSearchPathSQL, typeName)
	} else {
		row = c.conn.QueryRow(ctx, lookupInSchemaSQL, typeName, schema)
	}

	var oid, arrayOID uint32
	err := row.Scan(&oid, &arrayOID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, errors.Wrapf(gaussdb.ErrTypeNotFound, "%s", qualifiedName(schema, typeName))
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedObject {
			return 0, 0, errors.Wrapf(gaussdb.ErrTypeNotFound, "%s", qualifiedName(schema, typeName))
		}
		return 0, 0, errors.Wrapf(err, "failed to look up type %s", qualifiedName(schema, typeName))
	}

	return oid, arrayOID, nil
}

func qualifiedName(schema, typeName string) string {
	if schema == "" {
		return typeName
	}
	return schema + "." + typeName
}
