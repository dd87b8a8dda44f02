package gaussdbtype

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// DecodeText decodes text, varchar, bpchar and name values. The bytes must be
// valid UTF-8.
func DecodeText(v Value) (string, error) {
	src := v.Bytes()
	if src == nil {
		return "", nullError("text")
	}
	if !utf8.Valid(src) {
		return "", errors.Wrapf(ErrInvalidUTF8, "text value of %d bytes", len(src))
	}
	return string(src), nil
}

// EncodeText appends s. The result is never nil, so an empty string stays
// distinct from NULL.
func EncodeText(buf []byte, s string) ([]byte, error) {
	return nonNil(append(buf, s...)), nil
}

// DecodeTextEncoding decodes a text value sent in a non UTF-8 client encoding
// such as GBK or GB18030.
func DecodeTextEncoding(v Value, enc encoding.Encoding) (string, error) {
	src := v.Bytes()
	if src == nil {
		return "", nullError("text")
	}
	dst, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", &TranscodeError{Op: "decode", Err: err}
	}
	return string(dst), nil
}

// EncodeTextEncoding appends s converted to enc.
func EncodeTextEncoding(buf []byte, s string, enc encoding.Encoding) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errors.Wrap(ErrInvalidUTF8, "cannot transcode string")
	}
	b, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, &TranscodeError{Op: "encode", Err: err}
	}
	return nonNil(append(buf, b...)), nil
}
