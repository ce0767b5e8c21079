// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"net"
	"strconv"

	"github.com/pion/transport/v3/utils/xor"
)

// XORAddress implements the XOR transport-address attribute family:
// XOR-MAPPED-ADDRESS, XOR-PEER-ADDRESS and XOR-RELAYED-ADDRESS.
//
// The layout matches Address, but the port is XOR'ed with the most
// significant 16 bits of the magic cookie and the address bytes are
// XOR'ed with the magic cookie (IPv4) or with the magic cookie followed
// by the transaction ID (IPv6). The transform is applied on encode and
// decode only: IP and Port always hold the cleartext values.
//
// RFC 5389 Section 15.2.
type XORAddress struct {
	attrType AttrType
	IP       net.IP
	Port     int
}

// NewXORAddress returns an XORAddress attribute carried as type t.
func NewXORAddress(t AttrType, ip net.IP, port int) *XORAddress {
	return &XORAddress{attrType: t, IP: ip, Port: port}
}

// NewXORMappedAddress returns an XOR-MAPPED-ADDRESS attribute.
func NewXORMappedAddress(ip net.IP, port int) *XORAddress {
	return NewXORAddress(AttrXORMappedAddress, ip, port)
}

// NewXORPeerAddress returns an XOR-PEER-ADDRESS attribute.
func NewXORPeerAddress(ip net.IP, port int) *XORAddress {
	return NewXORAddress(AttrXORPeerAddress, ip, port)
}

// NewXORRelayedAddress returns an XOR-RELAYED-ADDRESS attribute.
func NewXORRelayedAddress(ip net.IP, port int) *XORAddress {
	return NewXORAddress(AttrXORRelayedAddress, ip, port)
}

func newXORAddressAttr(t AttrType) Attribute { return &XORAddress{attrType: t} }

// Type returns the attribute type code.
func (a *XORAddress) Type() AttrType { return a.attrType }

// Name returns the human label of the attribute type.
func (a *XORAddress) Name() string { return a.attrType.String() }

// DataLength returns 8 for IPv4 addresses and 20 for IPv6 ones.
func (a *XORAddress) DataLength() uint16 {
	return uint16(addrAttrSize(a.IP))
}

func (a *XORAddress) String() string {
	return net.JoinHostPort(a.IP.String(), strconv.Itoa(a.Port))
}

func (a *XORAddress) appendBody(dst []byte, tid TransactionID) ([]byte, error) {
	family, ip, err := familyAndIP(a.IP)
	if err != nil {
		return nil, err
	}
	mask := tid.xorMask()
	b := make([]byte, 4+len(ip))
	bin.PutUint16(b[0:2], family) // first 8 bits are zeroes
	bin.PutUint16(b[2:4], uint16(a.Port)^uint16(magicCookie>>16))
	xor.XorBytes(b[4:], ip, mask[:len(ip)])
	return append(dst, b...), nil
}

func (a *XORAddress) decodeBody(v []byte, tid TransactionID) error {
	ipLen, err := decodeAddrHeader(a.attrType, v)
	if err != nil {
		return err
	}
	mask := tid.xorMask()
	a.Port = int(bin.Uint16(v[2:4])) ^ (magicCookie >> 16)
	if len(a.IP) < ipLen {
		a.IP = make(net.IP, ipLen)
	} else {
		a.IP = a.IP[:ipLen]
	}
	xor.XorBytes(a.IP, v[4:4+ipLen], mask[:ipLen])
	return nil
}
