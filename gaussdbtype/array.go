package gaussdbtype

import (
	"math"

	"github.com/gaussdb-go/gaussdb/internal/gaussio"
	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// Information on the internals of the array format can be found in
// src/include/utils/array.h and src/backend/utils/adt/arrayfuncs.c of the
// PostgreSQL sources, which GaussDB shares. Of particular interest is the
// array_send function.

type ArrayDimension struct {
	Length     int32
	LowerBound int32
}

type ArrayHeader struct {
	ContainsNull bool
	ElementOID   uint32
	Dimensions   []ArrayDimension
}

// Cardinality returns the number of elements the header announces.
func (ah ArrayHeader) Cardinality() int {
	if len(ah.Dimensions) == 0 {
		return 0
	}
	n := 1
	for _, d := range ah.Dimensions {
		n *= int(d.Length)
	}
	return n
}

func readArrayHeader(r *gaussio.Reader) (ArrayHeader, error) {
	var ah ArrayHeader

	numDims, err := r.Int32()
	if err != nil {
		return ah, errors.WithMessage(err, "array header")
	}
	containsNull, err := r.Int32()
	if err != nil {
		return ah, errors.WithMessage(err, "array header")
	}
	ah.ContainsNull = containsNull != 0
	ah.ElementOID, err = r.Uint32()
	if err != nil {
		return ah, errors.WithMessage(err, "array header")
	}

	if numDims == 0 {
		return ah, nil
	}

	// Only one dimensional arrays are supported. This is a deliberate scope
	// limit of the codec, not a missing case.
	if numDims != 1 {
		return ah, errors.Wrapf(ErrUnsupportedDimensionality, "array has %d dimensions", numDims)
	}

	var dim ArrayDimension
	if dim.Length, err = r.Int32(); err != nil {
		return ah, errors.WithMessage(err, "array dimension")
	}
	if dim.LowerBound, err = r.Int32(); err != nil {
		return ah, errors.WithMessage(err, "array dimension")
	}
	if dim.Length < 0 {
		return ah, errors.Wrapf(ErrLengthMismatch, "negative array length %d", dim.Length)
	}
	ah.Dimensions = []ArrayDimension{dim}

	return ah, nil
}

// DecodeArrayHeader decodes only the header of an array value.
func DecodeArrayHeader(v Value) (ArrayHeader, error) {
	src := v.Bytes()
	if src == nil {
		return ArrayHeader{}, nullError("array")
	}
	return readArrayHeader(gaussio.NewReader(src))
}

// walkArray calls fn for every element of the array in v. elem is a NULL
// Value for NULL elements.
func walkArray(v Value, fn func(ah ArrayHeader, i int, elem Value) error) (ArrayHeader, error) {
	src := v.Bytes()
	if src == nil {
		return ArrayHeader{}, nullError("array")
	}

	r := gaussio.NewReader(src)
	ah, err := readArrayHeader(r)
	if err != nil {
		return ah, err
	}
	// A zero-dimension array is empty whatever follows the header.
	if len(ah.Dimensions) == 0 {
		return ah, nil
	}

	count := ah.Cardinality()
	for i := 0; i < count; i++ {
		size, err := r.Int32()
		if err != nil {
			return ah, errors.WithMessagef(err, "array element %d length", i)
		}

		if size == -1 {
			if !ah.ContainsNull {
				return ah, errors.Errorf("array element %d is NULL but the array has no NULL flag", i)
			}
			if err := fn(ah, i, NullValue(ah.ElementOID)); err != nil {
				return ah, err
			}
			continue
		}
		if size < 0 {
			return ah, errors.Wrapf(ErrLengthMismatch, "array element %d has length %d", i, size)
		}

		elemBytes, err := r.Next(int(size))
		if err != nil {
			return ah, errors.WithMessagef(err, "array element %d", i)
		}
		if err := fn(ah, i, NewValue(elemBytes, ah.ElementOID)); err != nil {
			return ah, errors.WithMessagef(err, "array element %d", i)
		}
	}

	if err := requireConsumed(r, "array"); err != nil {
		return ah, err
	}

	return ah, nil
}

// elementCapacity bounds the preallocation for a declared element count by
// what the buffer can actually hold; every element costs at least 4 bytes.
func elementCapacity(v Value, count int) int {
	if max := v.Len() / 4; count > max {
		return max
	}
	return count
}

// DecodeArray decodes a one dimensional array. NULL elements are dropped from
// the result, so {1,NULL,3} decodes to [1 3]; use DecodeNullableArray to keep
// their positions. A zero dimension array decodes to an empty slice.
func DecodeArray[T any](v Value, decode DecodeFunc[T]) ([]T, error) {
	result := []T{}
	_, err := walkArray(v, func(ah ArrayHeader, i int, elem Value) error {
		if i == 0 {
			result = make([]T, 0, elementCapacity(v, ah.Cardinality()))
		}
		if elem.IsNull() {
			return nil
		}
		e, err := decode(elem)
		if err != nil {
			return err
		}
		result = append(result, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeNullableArray decodes a one dimensional array keeping NULL elements as
// invalid Nullable values.
func DecodeNullableArray[T any](v Value, decode DecodeFunc[T]) ([]Nullable[T], error) {
	result := []Nullable[T]{}
	_, err := walkArray(v, func(ah ArrayHeader, i int, elem Value) error {
		if i == 0 {
			result = make([]Nullable[T], 0, elementCapacity(v, ah.Cardinality()))
		}
		e, err := DecodeNullable(elem, decode)
		if err != nil {
			return err
		}
		result = append(result, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func appendArrayHeader(buf []byte, ah ArrayHeader) []byte {
	buf = pgio.AppendInt32(buf, int32(len(ah.Dimensions)))

	var containsNull int32
	if ah.ContainsNull {
		containsNull = 1
	}
	buf = pgio.AppendInt32(buf, containsNull)
	buf = pgio.AppendUint32(buf, ah.ElementOID)

	for _, d := range ah.Dimensions {
		buf = pgio.AppendInt32(buf, d.Length)
		buf = pgio.AppendInt32(buf, d.LowerBound)
	}

	return buf
}

// appendElement writes a length prefixed element.
func appendElement[T any](buf []byte, e T, encode EncodeFunc[T]) ([]byte, error) {
	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)

	elemBuf, err := encode(buf, e)
	if err != nil {
		return nil, err
	}
	if elemBuf == nil {
		return nil, errors.New("element encoded as NULL")
	}
	buf = elemBuf

	size := len(buf[sp:]) - 4
	if size > math.MaxInt32 {
		return nil, errors.Errorf("element too large: %d bytes", size)
	}
	pgio.SetInt32(buf[sp:], int32(size))
	return buf, nil
}

func arrayDimensions(n int) ([]ArrayDimension, error) {
	if n == 0 {
		return nil, nil
	}
	if n > math.MaxInt32 {
		return nil, errors.Errorf("array too large: %d elements", n)
	}
	return []ArrayDimension{{Length: int32(n), LowerBound: 1}}, nil
}

// EncodeArray appends elems as a one dimensional array with lower bound 1 and
// no NULLs. An empty slice is written with zero dimensions, as the server
// itself sends empty arrays.
func EncodeArray[T any](buf []byte, elementOID uint32, elems []T, encode EncodeFunc[T]) ([]byte, error) {
	dims, err := arrayDimensions(len(elems))
	if err != nil {
		return nil, err
	}

	buf = appendArrayHeader(buf, ArrayHeader{ElementOID: elementOID, Dimensions: dims})
	for i, e := range elems {
		buf, err = appendElement(buf, e, encode)
		if err != nil {
			return nil, errors.WithMessagef(err, "array element %d", i)
		}
	}

	return buf, nil
}

// EncodeNullableArray appends elems as a one dimensional array. Invalid
// elements are written as NULL and set the header's NULL flag.
func EncodeNullableArray[T any](buf []byte, elementOID uint32, elems []Nullable[T], encode EncodeFunc[T]) ([]byte, error) {
	dims, err := arrayDimensions(len(elems))
	if err != nil {
		return nil, err
	}

	containsNull := false
	for _, e := range elems {
		if !e.Valid {
			containsNull = true
			break
		}
	}

	buf = appendArrayHeader(buf, ArrayHeader{ContainsNull: containsNull, ElementOID: elementOID, Dimensions: dims})
	for i, e := range elems {
		if !e.Valid {
			buf = pgio.AppendInt32(buf, -1)
			continue
		}
		buf, err = appendElement(buf, e.Value, encode)
		if err != nil {
			return nil, errors.WithMessagef(err, "array element %d", i)
		}
	}

	return buf, nil
}
