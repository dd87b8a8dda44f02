package gaussdbtype

import (
	"fmt"

	"github.com/gaussdb-go/gaussdb/internal/gaussio"
	"github.com/pkg/errors"
)

// Error kinds. Every error returned by a decoder or encoder in this package
// matches one of these with errors.Is.
var (
	ErrNullValue                 = errors.New("unexpected NULL value")
	ErrLengthMismatch            = errors.New("length mismatch")
	ErrInvalidTag                = errors.New("invalid tag")
	ErrInvalidDigit              = errors.New("numeric digit out of range")
	ErrUnsupportedDimensionality = errors.New("multi-dimensional arrays are not supported")
	ErrTruncatedBuffer           = gaussio.ErrTruncated
	ErrInvalidUTF8               = errors.New("invalid UTF-8")
	ErrTypeLookupFailed          = errors.New("type lookup failed")
)

// TranscodeError is returned when text cannot be converted between UTF-8 and
// a client encoding. It matches ErrInvalidUTF8 as well as the underlying
// golang.org/x/text error.
type TranscodeError struct {
	Op  string
	Err error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("cannot %s text: %v", e.Op, e.Err)
}

func (e *TranscodeError) Unwrap() []error {
	return []error{ErrInvalidUTF8, e.Err}
}

// NullValueError is returned when a NULL is decoded into a type that cannot
// represent it. Wrap the decoder with DecodeNullable to accept NULL.
type NullValueError struct {
	TypeName string
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("cannot decode NULL into %s", e.TypeName)
}

func (e *NullValueError) Unwrap() error {
	return ErrNullValue
}

// LengthMismatchError is returned when a value's length does not match the
// fixed or declared width of its type.
type LengthMismatchError struct {
	TypeName string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid length for %s: expected %d bytes, got %d", e.TypeName, e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// FailedLookupError records a type name that could not be resolved to an OID.
// It is carried inside a TypeMetadata and only returned once the OID is read.
type FailedLookupError struct {
	TypeName string
	Schema   string
}

func (e *FailedLookupError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("failed to find a type oid for %s", e.TypeName)
	}
	return fmt.Sprintf("failed to find a type oid for %s.%s", e.Schema, e.TypeName)
}

func (e *FailedLookupError) Unwrap() error {
	return ErrTypeLookupFailed
}

func nullError(typeName string) error {
	return &NullValueError{TypeName: typeName}
}

// fixedWidth returns the bytes of v, which must be exactly n bytes long.
func fixedWidth(v Value, typeName string, n int) ([]byte, error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError(typeName)
	}
	if len(src) != n {
		return nil, &LengthMismatchError{TypeName: typeName, Expected: n, Actual: len(src)}
	}
	return src, nil
}

// requireConsumed reports trailing garbage after a variable length value.
func requireConsumed(r *gaussio.Reader, typeName string) error {
	if r.Len() != 0 {
		return &LengthMismatchError{TypeName: typeName, Expected: r.Offset(), Actual: r.Offset() + r.Len()}
	}
	return nil
}
