package gaussdbtype

import (
	"encoding/binary"
	"math"

	"github.com/jackc/pgio"
)

func DecodeFloat4(v Value) (float32, error) {
	src, err := fixedWidth(v, "float4", 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(src)), nil
}

func EncodeFloat4(buf []byte, f float32) ([]byte, error) {
	return pgio.AppendUint32(buf, math.Float32bits(f)), nil
}

func DecodeFloat8(v Value) (float64, error) {
	src, err := fixedWidth(v, "float8", 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(src)), nil
}

func EncodeFloat8(buf []byte, f float64) ([]byte, error) {
	return pgio.AppendUint64(buf, math.Float64bits(f)), nil
}
