// Package uuid converts between the uuid wire format and
// github.com/gofrs/uuid.
package uuid

import (
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/gofrs/uuid"
)

func Decode(v gaussdbtype.Value) (uuid.UUID, error) {
	u, err := gaussdbtype.DecodeUUID(v)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(u), nil
}

// DecodeNull decodes a uuid value that may be NULL.
func DecodeNull(v gaussdbtype.Value) (uuid.NullUUID, error) {
	if v.IsNull() {
		return uuid.NullUUID{}, nil
	}
	u, err := Decode(v)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: u, Valid: true}, nil
}

func Encode(buf []byte, u uuid.UUID) ([]byte, error) {
	return gaussdbtype.EncodeUUID(buf, gaussdbtype.UUID(u))
}

// EncodeNull appends u, or returns nil when u is not valid.
func EncodeNull(buf []byte, u uuid.NullUUID) ([]byte, error) {
	if !u.Valid {
		return nil, nil
	}
	return Encode(buf, u.UUID)
}
