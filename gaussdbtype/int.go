package gaussdbtype

import (
	"encoding/binary"

	"github.com/jackc/pgio"
)

func DecodeInt2(v Value) (int16, error) {
	src, err := fixedWidth(v, "int2", 2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(src)), nil
}

func EncodeInt2(buf []byte, n int16) ([]byte, error) {
	return pgio.AppendInt16(buf, n), nil
}

func DecodeInt4(v Value) (int32, error) {
	src, err := fixedWidth(v, "int4", 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(src)), nil
}

func EncodeInt4(buf []byte, n int32) ([]byte, error) {
	return pgio.AppendInt32(buf, n), nil
}

func DecodeInt8(v Value) (int64, error) {
	src, err := fixedWidth(v, "int8", 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(src)), nil
}

func EncodeInt8(buf []byte, n int64) ([]byte, error) {
	return pgio.AppendInt64(buf, n), nil
}

// DecodeOID decodes an unsigned 32-bit oid.
func DecodeOID(v Value) (uint32, error) {
	src, err := fixedWidth(v, "oid", 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(src), nil
}

func EncodeOID(buf []byte, n uint32) ([]byte, error) {
	return pgio.AppendUint32(buf, n), nil
}

// DecodeChar decodes the single byte "char" type.
func DecodeChar(v Value) (byte, error) {
	src, err := fixedWidth(v, "char", 1)
	if err != nil {
		return 0, err
	}
	return src[0], nil
}

func EncodeChar(buf []byte, c byte) ([]byte, error) {
	return append(buf, c), nil
}
