package gaussdbtype

// DecodeBytea returns a copy of the value bytes.
func DecodeBytea(v Value) ([]byte, error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError("bytea")
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

// DecodeByteaBorrowed returns the value bytes without copying. The result is
// only valid as long as the row buffer is.
func DecodeByteaBorrowed(v Value) ([]byte, error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError("bytea")
	}
	return src, nil
}

// EncodeBytea appends b. An empty b yields an empty, non-nil slice.
func EncodeBytea(buf []byte, b []byte) ([]byte, error) {
	return nonNil(append(buf, b...)), nil
}
