package gaussio

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrTruncated is returned when a read needs more bytes than remain in the
// buffer.
var ErrTruncated = errors.New("truncated buffer")

// Reader is a cursor over a byte slice. The zero value is an empty reader.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the unread bytes without consuming them.
func (r *Reader) Remaining() []byte {
	return r.buf[r.off:]
}

func (r *Reader) need(n int) error {
	if n < 0 || r.Len() < n {
		return errors.Wrapf(ErrTruncated, "need %d bytes at offset %d, have %d", n, r.off, r.Len())
	}
	return nil
}

func (r *Reader) Byte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	n := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return n, nil
}

func (r *Reader) Int16() (int16, error) {
	n, err := r.Uint16()
	return int16(n), err
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	n := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return n, nil
}

func (r *Reader) Int32() (int32, error) {
	n, err := r.Uint32()
	return int32(n), err
}

func (r *Reader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	n := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return n, nil
}

func (r *Reader) Int64() (int64, error) {
	n, err := r.Uint64()
	return int64(n), err
}

// Next returns the next n bytes. The returned slice aliases the underlying
// buffer.
func (r *Reader) Next(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}
