package gaussdbtype

// DecodeBool decodes a bool. Any non-zero byte is true.
func DecodeBool(v Value) (bool, error) {
	src, err := fixedWidth(v, "bool", 1)
	if err != nil {
		return false, err
	}
	return src[0] != 0, nil
}

func EncodeBool(buf []byte, b bool) ([]byte, error) {
	if b {
		return append(buf, 1), nil
	}
	return append(buf, 0), nil
}
