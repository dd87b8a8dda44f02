package gaussdbtype

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

type UUID [16]byte

// String returns the canonical 8-4-4-4-12 hex form.
func (u UUID) String() string {
	var buf [36]byte
	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], u[10:])
	return string(buf[:])
}

// ParseUUID parses the canonical, braced or unhyphenated hex forms.
func ParseUUID(src string) (UUID, error) {
	var u UUID

	orig := src
	if len(src) == 38 {
		if src[0] != '{' || src[37] != '}' {
			return u, errors.Errorf("cannot parse UUID %v", orig)
		}
		src = src[1:37]
	}

	switch len(src) {
	case 36:
		if src[8] != '-' || src[13] != '-' || src[18] != '-' || src[23] != '-' {
			return u, errors.Errorf("cannot parse UUID %v", orig)
		}
		src = src[0:8] + src[9:13] + src[14:18] + src[19:23] + src[24:]
	case 32:
	default:
		return u, errors.Errorf("cannot parse UUID %v", orig)
	}

	if _, err := hex.Decode(u[:], []byte(src)); err != nil {
		return UUID{}, errors.Wrapf(err, "cannot parse UUID %v", orig)
	}
	return u, nil
}

func DecodeUUID(v Value) (UUID, error) {
	src, err := fixedWidth(v, "uuid", 16)
	if err != nil {
		return UUID{}, err
	}
	var u UUID
	copy(u[:], src)
	return u, nil
}

func EncodeUUID(buf []byte, u UUID) ([]byte, error) {
	return append(buf, u[:]...), nil
}
