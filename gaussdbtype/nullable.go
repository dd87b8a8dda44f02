package gaussdbtype

// DecodeFunc decodes a single non-NULL value.
type DecodeFunc[T any] func(v Value) (T, error)

// EncodeFunc appends the binary form of value to buf.
type EncodeFunc[T any] func(buf []byte, value T) ([]byte, error)

// Nullable is a value that may be SQL NULL.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Some returns a valid Nullable holding value.
func Some[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Valid: true}
}

// DecodeNullable adapts decode to accept NULL, which decodes to an invalid
// Nullable.
func DecodeNullable[T any](v Value, decode DecodeFunc[T]) (Nullable[T], error) {
	if v.IsNull() {
		return Nullable[T]{}, nil
	}
	value, err := decode(v)
	if err != nil {
		return Nullable[T]{}, err
	}
	return Nullable[T]{Value: value, Valid: true}, nil
}

// EncodeNullable appends n using encode. The returned slice is nil when n is
// NULL, which callers send as a -1 length.
func EncodeNullable[T any](buf []byte, n Nullable[T], encode EncodeFunc[T]) ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	buf, err := encode(buf, n.Value)
	if err != nil {
		return nil, err
	}
	return nonNil(buf), nil
}

// nonNil keeps nil reserved for NULL.
func nonNil(buf []byte) []byte {
	if buf == nil {
		return []byte{}
	}
	return buf
}
