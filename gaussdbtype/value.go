package gaussdbtype

import "fmt"

// Value is a single column value as read from a data row in binary format. A
// nil byte slice is SQL NULL. The bytes usually alias the row buffer and are
// only valid until the next row is read; use Owned to keep a value longer.
type Value struct {
	bytes []byte
	oid   uint32
}

// NewValue returns a Value over src for a column of type oid. src is not
// copied.
func NewValue(src []byte, oid uint32) Value {
	return Value{bytes: src, oid: oid}
}

// NullValue returns a SQL NULL of type oid.
func NullValue(oid uint32) Value {
	return Value{oid: oid}
}

// Bytes returns the raw value bytes, or nil for NULL.
func (v Value) Bytes() []byte {
	return v.bytes
}

// OID returns the type oid of the column the value was read from.
func (v Value) OID() uint32 {
	return v.oid
}

func (v Value) IsNull() bool {
	return v.bytes == nil
}

// Len returns the number of bytes in the value, or -1 for NULL.
func (v Value) Len() int {
	if v.bytes == nil {
		return -1
	}
	return len(v.bytes)
}

// IsEmpty reports whether the value is a non-NULL zero length value.
func (v Value) IsEmpty() bool {
	return v.bytes != nil && len(v.bytes) == 0
}

// Owned returns a copy of v that does not share memory with the row buffer.
func (v Value) Owned() Value {
	if v.bytes == nil {
		return v
	}
	b := make([]byte, len(v.bytes))
	copy(b, v.bytes)
	return Value{bytes: b, oid: v.oid}
}

// WithOID returns v relabeled with a different type oid. Array and range
// decoders use it to hand element bytes to element decoders.
func (v Value) WithOID(oid uint32) Value {
	return Value{bytes: v.bytes, oid: oid}
}

func (v Value) String() string {
	if v.bytes == nil {
		return fmt.Sprintf("Value{oid: %d, bytes: NULL}", v.oid)
	}
	return fmt.Sprintf("Value{oid: %d, bytes: %d bytes}", v.oid, len(v.bytes))
}
