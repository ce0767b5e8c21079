// Package stunattr implements the attribute layer of Session Traversal
// Utilities for NAT (STUN) and its TURN and ICE extensions.
//
// Every STUN attribute is TLV encoded with a 16 bit type, a 16 bit
// length and a variable value padded to a 4 byte boundary:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|         Type                  |            Length             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                             Value (variable)                ....
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The package decodes and encodes single attributes and ordered
// attribute collections. Message framing (header, transaction matching,
// message-length bookkeeping) and transports are the caller's concern;
// the only piece of message state this layer needs is the transaction
// ID, which XOR address attributes mix into their wire form.
package stunattr

import "encoding/binary"

// bin is shorthand for binary.BigEndian.
var bin = binary.BigEndian //nolint:gochecknoglobals

const (
	// magicCookie is the fixed value 0x2112A442 that the message header
	// carries in network byte order. XOR address attributes use it (and,
	// for IPv6, the transaction ID following it) as the XOR mask.
	//
	// Defined in "STUN Message Structure", RFC 5389 Section 6.
	magicCookie = 0x2112A442

	// TransactionIDSize is the length of a transaction ID in bytes.
	TransactionIDSize = 12 // 96 bit

	attributeHeaderSize = 4
)

// TransactionID identifies one STUN transaction. It is produced by the
// message framing layer; this package only reads it while applying the
// XOR transform of XOR-*-ADDRESS attributes. The zero value is a valid
// ID for attributes that do not use it.
type TransactionID [TransactionIDSize]byte

// xorMask returns the 16 mask bytes for XOR address attributes:
// the magic cookie followed by the transaction ID.
func (t TransactionID) xorMask() [16]byte {
	var mask [16]byte
	bin.PutUint32(mask[0:4], magicCookie)
	copy(mask[4:], t[:])
	return mask
}
