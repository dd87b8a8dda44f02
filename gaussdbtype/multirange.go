package gaussdbtype

import (
	"math"

	"github.com/gaussdb-go/gaussdb/internal/gaussio"
	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// Multirange is an ordered list of non-overlapping ranges.
type Multirange[T any] []Range[T]

// DecodeMultirange decodes a multirange: a uint32 range count followed by
// length prefixed ranges.
func DecodeMultirange[T any](v Value, elementOID uint32, decode DecodeFunc[T]) (Multirange[T], error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError("multirange")
	}

	r := gaussio.NewReader(src)
	count, err := r.Uint32()
	if err != nil {
		return nil, errors.WithMessage(err, "multirange count")
	}

	// Every range costs at least a length prefix and a flag byte.
	capacity := int(count)
	if max := r.Len() / 5; capacity > max {
		capacity = max
	}
	result := make(Multirange[T], 0, capacity)

	for i := uint32(0); i < count; i++ {
		size, err := r.Int32()
		if err != nil {
			return nil, errors.WithMessagef(err, "multirange element %d length", i)
		}
		if size < 0 {
			return nil, errors.Wrapf(ErrLengthMismatch, "multirange element %d has length %d", i, size)
		}
		rangeBytes, err := r.Next(int(size))
		if err != nil {
			return nil, errors.WithMessagef(err, "multirange element %d", i)
		}

		rng, err := DecodeRange(NewValue(rangeBytes, v.OID()), elementOID, decode)
		if err != nil {
			return nil, errors.WithMessagef(err, "multirange element %d", i)
		}
		result = append(result, rng)
	}

	if err := requireConsumed(r, "multirange"); err != nil {
		return nil, err
	}

	return result, nil
}

// EncodeMultirange appends the binary form of mr.
func EncodeMultirange[T any](buf []byte, mr Multirange[T], encode EncodeFunc[T]) ([]byte, error) {
	if uint64(len(mr)) > math.MaxUint32 {
		return nil, errors.Errorf("multirange too large: %d ranges", len(mr))
	}
	buf = pgio.AppendUint32(buf, uint32(len(mr)))

	for i, rng := range mr {
		sp := len(buf)
		buf = pgio.AppendInt32(buf, -1)

		var err error
		buf, err = EncodeRange(buf, rng, encode)
		if err != nil {
			return nil, errors.WithMessagef(err, "multirange element %d", i)
		}

		size := len(buf[sp:]) - 4
		if size > math.MaxInt32 {
			return nil, errors.Errorf("multirange element %d too large: %d bytes", i, size)
		}
		pgio.SetInt32(buf[sp:], int32(size))
	}

	return buf, nil
}
