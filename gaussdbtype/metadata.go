package gaussdbtype

// TypeMetadata holds the oid and array oid of a type, or the error that
// prevented them from being resolved. The error is data until one of the oids
// is read, so statements can be built before it is known whether every type
// they mention exists.
type TypeMetadata struct {
	oid      uint32
	arrayOID uint32
	err      error
}

// NewTypeMetadata returns resolved metadata.
func NewTypeMetadata(oid, arrayOID uint32) TypeMetadata {
	return TypeMetadata{oid: oid, arrayOID: arrayOID}
}

// FailedTypeMetadata returns metadata whose oid accessors report err.
func FailedTypeMetadata(err *FailedLookupError) TypeMetadata {
	return TypeMetadata{err: err}
}

// OID returns the type oid, or the deferred lookup error.
func (tm TypeMetadata) OID() (uint32, error) {
	if tm.err != nil {
		return 0, tm.err
	}
	return tm.oid, nil
}

// ArrayOID returns the oid of the array type whose elements are this type, or
// the deferred lookup error.
func (tm TypeMetadata) ArrayOID() (uint32, error) {
	if tm.err != nil {
		return 0, tm.err
	}
	return tm.arrayOID, nil
}

// Err returns the deferred lookup error, if any.
func (tm TypeMetadata) Err() error {
	return tm.err
}

// ArrayMetadata returns the metadata of the array type over this type. Arrays
// of arrays do not exist so the result has no array oid of its own.
func (tm TypeMetadata) ArrayMetadata() TypeMetadata {
	if tm.err != nil {
		return tm
	}
	return TypeMetadata{oid: tm.arrayOID}
}
