package gaussdbtype

import (
	"net"

	"github.com/pkg/errors"
)

// DecodeMacaddr decodes a 6 byte macaddr.
func DecodeMacaddr(v Value) (net.HardwareAddr, error) {
	src, err := fixedWidth(v, "macaddr", 6)
	if err != nil {
		return nil, err
	}
	addr := make(net.HardwareAddr, 6)
	copy(addr, src)
	return addr, nil
}

func EncodeMacaddr(buf []byte, addr net.HardwareAddr) ([]byte, error) {
	if len(addr) != 6 {
		return nil, errors.Errorf("macaddr must be 6 bytes, got %d", len(addr))
	}
	return append(buf, addr...), nil
}

// DecodeMacaddr8 decodes an 8 byte EUI-64 macaddr8.
func DecodeMacaddr8(v Value) (net.HardwareAddr, error) {
	src, err := fixedWidth(v, "macaddr8", 8)
	if err != nil {
		return nil, err
	}
	addr := make(net.HardwareAddr, 8)
	copy(addr, src)
	return addr, nil
}

// EncodeMacaddr8 appends addr as a macaddr8. A 6 byte address is widened the
// way the server casts macaddr to macaddr8, by inserting FF:FE in the middle.
func EncodeMacaddr8(buf []byte, addr net.HardwareAddr) ([]byte, error) {
	switch len(addr) {
	case 8:
		return append(buf, addr...), nil
	case 6:
		return append(buf, addr[0], addr[1], addr[2], 0xff, 0xfe, addr[3], addr[4], addr[5]), nil
	default:
		return nil, errors.Errorf("macaddr8 must be 6 or 8 bytes, got %d", len(addr))
	}
}
