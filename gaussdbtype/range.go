package gaussdbtype

import (
	"math"

	"github.com/gaussdb-go/gaussdb/internal/gaussio"
	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

type BoundType byte

const (
	Inclusive = BoundType('i')
	Exclusive = BoundType('e')
	Unbounded = BoundType('U')
)

func (bt BoundType) String() string {
	return string(bt)
}

// Range flag bits, from src/include/utils/rangetypes.h.
const (
	rangeEmpty        = 0x01
	rangeLBInc        = 0x02
	rangeUBInc        = 0x04
	rangeLBInf        = 0x08
	rangeUBInf        = 0x10
	rangeLBNull       = 0x20
	rangeUBNull       = 0x40
	rangeContainEmpty = 0x80
)

// Bound is one end of a range. Value is meaningless when Type is Unbounded.
type Bound[T any] struct {
	Type  BoundType
	Value T
}

func IncludedBound[T any](value T) Bound[T] {
	return Bound[T]{Type: Inclusive, Value: value}
}

func ExcludedBound[T any](value T) Bound[T] {
	return Bound[T]{Type: Exclusive, Value: value}
}

func UnboundedBound[T any]() Bound[T] {
	return Bound[T]{Type: Unbounded}
}

// Range is a range value. An empty range has Empty set and both bounds
// Unbounded.
type Range[T any] struct {
	Lower Bound[T]
	Upper Bound[T]
	Empty bool
}

// NewRange returns a non-empty range between lower and upper.
func NewRange[T any](lower, upper Bound[T]) Range[T] {
	return Range[T]{Lower: lower, Upper: upper}
}

// EmptyRange returns the empty range.
func EmptyRange[T any]() Range[T] {
	return Range[T]{Lower: UnboundedBound[T](), Upper: UnboundedBound[T](), Empty: true}
}

// Bounds returns the lower and upper bound. An empty range reports both bounds
// as Unbounded, so it is indistinguishable from (-inf,inf) here; use IsEmpty.
func (r Range[T]) Bounds() (lower, upper Bound[T]) {
	if r.Empty {
		return UnboundedBound[T](), UnboundedBound[T]()
	}
	return r.Lower, r.Upper
}

func (r Range[T]) IsEmpty() bool {
	return r.Empty
}

func readBound[T any](r *gaussio.Reader, decode DecodeFunc[T], elementOID uint32, side string) (T, error) {
	var zero T

	size, err := r.Int32()
	if err != nil {
		return zero, errors.WithMessagef(err, "range %s bound length", side)
	}
	if size < 0 {
		return zero, errors.Wrapf(ErrLengthMismatch, "range %s bound has length %d", side, size)
	}
	src, err := r.Next(int(size))
	if err != nil {
		return zero, errors.WithMessagef(err, "range %s bound", side)
	}

	value, err := decode(NewValue(src, elementOID))
	if err != nil {
		return zero, errors.WithMessagef(err, "range %s bound", side)
	}
	return value, nil
}

func decodeRange[T any](r *gaussio.Reader, decode DecodeFunc[T], elementOID uint32) (Range[T], error) {
	flags, err := r.Byte()
	if err != nil {
		return Range[T]{}, errors.WithMessage(err, "range flags")
	}

	if flags&rangeEmpty != 0 {
		return EmptyRange[T](), nil
	}

	rng := Range[T]{Lower: UnboundedBound[T](), Upper: UnboundedBound[T]()}

	if flags&(rangeLBInf|rangeLBNull) == 0 {
		rng.Lower.Value, err = readBound(r, decode, elementOID, "lower")
		if err != nil {
			return Range[T]{}, err
		}
		rng.Lower.Type = Exclusive
		if flags&rangeLBInc != 0 {
			rng.Lower.Type = Inclusive
		}
	}

	if flags&(rangeUBInf|rangeUBNull) == 0 {
		rng.Upper.Value, err = readBound(r, decode, elementOID, "upper")
		if err != nil {
			return Range[T]{}, err
		}
		rng.Upper.Type = Exclusive
		if flags&rangeUBInc != 0 {
			rng.Upper.Type = Inclusive
		}
	}

	return rng, nil
}

// DecodeRange decodes a range whose bounds are decoded with decode. The bound
// values are handed to decode labeled with elementOID.
func DecodeRange[T any](v Value, elementOID uint32, decode DecodeFunc[T]) (Range[T], error) {
	src := v.Bytes()
	if src == nil {
		return Range[T]{}, nullError("range")
	}

	r := gaussio.NewReader(src)
	rng, err := decodeRange(r, decode, elementOID)
	if err != nil {
		return Range[T]{}, err
	}
	if err := requireConsumed(r, "range"); err != nil {
		return Range[T]{}, err
	}
	return rng, nil
}

func appendBound[T any](buf []byte, b Bound[T], encode EncodeFunc[T]) ([]byte, error) {
	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)

	boundBuf, err := encode(buf, b.Value)
	if err != nil {
		return nil, err
	}
	if boundBuf == nil {
		return nil, errors.New("range bound encoded as NULL")
	}
	buf = boundBuf

	size := len(buf[sp:]) - 4
	if size > math.MaxInt32 {
		return nil, errors.Errorf("range bound too large: %d bytes", size)
	}
	pgio.SetInt32(buf[sp:], int32(size))
	return buf, nil
}

func rangeFlags(lower, upper BoundType) (byte, error) {
	var flags byte

	switch lower {
	case Inclusive:
		flags |= rangeLBInc
	case Unbounded:
		flags |= rangeLBInf
	case Exclusive:
	default:
		return 0, errors.Wrapf(ErrInvalidTag, "unknown lower bound type %q", byte(lower))
	}

	switch upper {
	case Inclusive:
		flags |= rangeUBInc
	case Unbounded:
		flags |= rangeUBInf
	case Exclusive:
	default:
		return 0, errors.Wrapf(ErrInvalidTag, "unknown upper bound type %q", byte(upper))
	}

	return flags, nil
}

// EncodeRange appends the binary form of rng, encoding its bounds with
// encode.
func EncodeRange[T any](buf []byte, rng Range[T], encode EncodeFunc[T]) ([]byte, error) {
	if rng.Empty {
		return append(buf, rangeEmpty), nil
	}

	flags, err := rangeFlags(rng.Lower.Type, rng.Upper.Type)
	if err != nil {
		return nil, err
	}
	buf = append(buf, flags)

	if rng.Lower.Type != Unbounded {
		if buf, err = appendBound(buf, rng.Lower, encode); err != nil {
			return nil, errors.WithMessage(err, "range lower bound")
		}
	}

	if rng.Upper.Type != Unbounded {
		if buf, err = appendBound(buf, rng.Upper, encode); err != nil {
			return nil, errors.WithMessage(err, "range upper bound")
		}
	}

	return buf, nil
}
