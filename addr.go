// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	familyIPv4 uint16 = 0x01
	familyIPv6 uint16 = 0x02
)

// ErrBadIPLength means that len(IP) is not net.{IPv6len,IPv4len}.
var ErrBadIPLength = errors.New("invalid length of IP value")

// isIPv4 returns true if ip with len of net.IPv6Len seems to be ipv4.
func isIPv4(ip net.IP) bool {
	// Optimized for performance. Copied from net.IP.To4.
	return isZeros(ip[0:10]) && ip[10] == 0xff && ip[11] == 0xff
}

// Is p all zeros?
func isZeros(p net.IP) bool {
	for i := 0; i < len(p); i++ {
		if p[i] != 0 {
			return false
		}
	}

	return true
}

// Address implements the plain transport-address attribute family:
// MAPPED-ADDRESS, SOURCE-ADDRESS, CHANGED-ADDRESS, RESPONSE-ADDRESS,
// REFLECTED-FROM and ALTERNATE-SERVER. The body is one reserved byte,
// one family byte, the port and the 4 or 16 address bytes.
//
// RFC 5389 Section 15.1.
type Address struct {
	attrType AttrType
	IP       net.IP
	Port     int
}

// NewAddress returns an Address attribute carried as type t.
func NewAddress(t AttrType, ip net.IP, port int) *Address {
	return &Address{attrType: t, IP: ip, Port: port}
}

// NewMappedAddress returns a MAPPED-ADDRESS attribute.
func NewMappedAddress(ip net.IP, port int) *Address {
	return NewAddress(AttrMappedAddress, ip, port)
}

// NewAlternateServer returns an ALTERNATE-SERVER attribute.
func NewAlternateServer(ip net.IP, port int) *Address {
	return NewAddress(AttrAlternateServer, ip, port)
}

func newAddressAttr(t AttrType) Attribute { return &Address{attrType: t} }

// Type returns the attribute type code.
func (a *Address) Type() AttrType { return a.attrType }

// Name returns the human label of the attribute type.
func (a *Address) Name() string { return a.attrType.String() }

// DataLength returns 8 for IPv4 addresses and 20 for IPv6 ones.
func (a *Address) DataLength() uint16 {
	return uint16(addrAttrSize(a.IP))
}

func (a *Address) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func addrAttrSize(ip net.IP) int {
	if len(ip) == net.IPv6len && !isIPv4(ip) {
		return 4 + net.IPv6len
	}
	return 4 + net.IPv4len
}

// familyAndIP normalizes ip to its shortest form and returns the wire
// family value, or ErrBadIPLength for anything that is not a 4 or 16
// byte address.
func familyAndIP(ip net.IP) (uint16, net.IP, error) {
	switch {
	case len(ip) == net.IPv6len && isIPv4(ip):
		return familyIPv4, ip[12:16], nil // like in ip.To4()
	case len(ip) == net.IPv6len:
		return familyIPv6, ip, nil
	case len(ip) == net.IPv4len:
		return familyIPv4, ip, nil
	default:
		return 0, nil, ErrBadIPLength
	}
}

func (a *Address) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	family, ip, err := familyAndIP(a.IP)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 4, 4+len(ip))
	bin.PutUint16(b[0:2], family) // first 8 bits are zeroes
	bin.PutUint16(b[2:4], uint16(a.Port))
	b = append(b, ip...)
	return append(dst, b...), nil
}

func (a *Address) decodeBody(v []byte, _ TransactionID) error {
	ipLen, err := decodeAddrHeader(a.attrType, v)
	if err != nil {
		return err
	}
	a.Port = int(bin.Uint16(v[2:4]))
	a.IP = append(a.IP[:0], v[4:4+ipLen]...)
	return nil
}

// decodeAddrHeader validates the shared reserved/family/port prefix of
// address attributes and returns the address length the family implies.
func decodeAddrHeader(t AttrType, v []byte) (int, error) {
	if len(v) < 4 {
		return 0, newAttrDecodeErr("address",
			fmt.Sprintf("buffer length %d is less than 4 (expected header size)", len(v)),
		)
	}
	family := bin.Uint16(v[0:2])
	if family != familyIPv4 && family != familyIPv6 {
		return 0, newDecodeErr("address", "family",
			fmt.Sprintf("bad value %d", family),
		)
	}
	ipLen := net.IPv4len
	if family == familyIPv6 {
		ipLen = net.IPv6len
	}
	if err := CheckSize(t, len(v), 4+ipLen); err != nil {
		return 0, err
	}
	return ipLen, nil
}
