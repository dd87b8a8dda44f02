package gaussdbtype

import (
	"net/netip"

	"github.com/pkg/errors"
)

// Address families as sent by the server. These are not the platform's
// AF_INET values.
const (
	familyINET  = 2
	familyINET6 = 3
)

// DecodeInet decodes an inet value. The host bits of the address are kept.
func DecodeInet(v Value) (netip.Prefix, error) {
	return decodeNetwork(v, "inet", false)
}

func EncodeInet(buf []byte, p netip.Prefix) ([]byte, error) {
	return encodeNetwork(buf, p, false)
}

// DecodeCidr decodes a cidr value.
func DecodeCidr(v Value) (netip.Prefix, error) {
	return decodeNetwork(v, "cidr", true)
}

// EncodeCidr appends p as a cidr. p is masked to its prefix length first.
func EncodeCidr(buf []byte, p netip.Prefix) ([]byte, error) {
	return encodeNetwork(buf, p.Masked(), true)
}

func decodeNetwork(v Value, typeName string, cidr bool) (netip.Prefix, error) {
	src := v.Bytes()
	if src == nil {
		return netip.Prefix{}, nullError(typeName)
	}
	if len(src) < 4 {
		return netip.Prefix{}, &LengthMismatchError{TypeName: typeName, Expected: 4, Actual: len(src)}
	}

	family, bits, isCIDR, size := src[0], src[1], src[2], src[3]
	if (isCIDR != 0) != cidr {
		return netip.Prefix{}, errors.Wrapf(ErrInvalidTag, "%s value has cidr flag %d", typeName, isCIDR)
	}

	var addrLen int
	switch family {
	case familyINET:
		addrLen = 4
	case familyINET6:
		addrLen = 16
	default:
		return netip.Prefix{}, errors.Wrapf(ErrInvalidTag, "unknown %s address family %d", typeName, family)
	}
	if int(size) != addrLen || len(src) != 4+addrLen {
		return netip.Prefix{}, &LengthMismatchError{TypeName: typeName, Expected: 4 + addrLen, Actual: len(src)}
	}

	addr, _ := netip.AddrFromSlice(src[4:])
	prefix := netip.PrefixFrom(addr, int(bits))
	if !prefix.IsValid() {
		return netip.Prefix{}, errors.Errorf("invalid %s prefix length %d", typeName, bits)
	}
	return prefix, nil
}

func encodeNetwork(buf []byte, p netip.Prefix, cidr bool) ([]byte, error) {
	if !p.IsValid() {
		return nil, errors.Errorf("invalid network prefix %v", p)
	}

	addr := p.Addr()
	// IPv4-mapped IPv6 addresses keep their IPv6 form on the wire.
	family := byte(familyINET6)
	if addr.Is4() {
		family = familyINET
	}

	var isCIDR byte
	if cidr {
		isCIDR = 1
	}

	raw := addr.AsSlice()
	buf = append(buf, family, byte(p.Bits()), isCIDR, byte(len(raw)))
	return append(buf, raw...), nil
}
