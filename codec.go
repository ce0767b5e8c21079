// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// AppendAttribute appends the TLV encoding of attr to dst and returns
// the extended buffer: 2 byte type, 2 byte unpadded body length, the
// body, then zero bytes up to the next 4 byte boundary. The padding is
// not counted in the length field.
//
// A body that does not fit the 16 bit length field fails with
// ErrValueTooLarge before anything is truncated.
func AppendAttribute(dst []byte, attr Attribute, tid TransactionID) ([]byte, error) {
	first := len(dst)
	dst = append(dst, make([]byte, attributeHeaderSize)...)
	dst, err := attr.appendBody(dst, tid)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", attr.Type())
	}
	bodyLen := len(dst) - first - attributeHeaderSize
	if bodyLen > math.MaxUint16 {
		return nil, ErrValueTooLarge
	}
	bin.PutUint16(dst[first:first+2], attr.Type().Value()) // T
	bin.PutUint16(dst[first+2:first+4], uint16(bodyLen))   // L
	for i := bodyLen; i < nearestPaddedValueLength(bodyLen); i++ {
		dst = append(dst, 0)
	}
	return dst, nil
}

// EncodeAttribute returns the TLV encoding of attr, padding included.
func EncodeAttribute(attr Attribute, tid TransactionID) ([]byte, error) {
	return AppendAttribute(nil, attr, tid)
}

// DecodeAttribute decodes the first attribute in buf and returns it
// together with the number of bytes consumed. Consumed covers the
// header and the padded body, so repeated calls walk a message buffer
// without realignment logic in the caller.
//
// Unregistered comprehension-optional types decode into *RawAttribute;
// unregistered comprehension-required types fail with
// *UnknownRequiredAttrError. A truncated header or body fails with
// DecodeErr and never reads past buf.
func DecodeAttribute(buf []byte, tid TransactionID) (Attribute, int, error) {
	if len(buf) < attributeHeaderSize {
		return nil, 0, newAttrDecodeErr("header",
			fmt.Sprintf("buffer length %d is less than %d (expected header size)",
				len(buf), attributeHeaderSize,
			),
		)
	}
	var (
		t      = AttrType(bin.Uint16(buf[0:2])) // first 2 bytes
		aL     = int(bin.Uint16(buf[2:4]))      // second 2 bytes
		aBuffL = nearestPaddedValueLength(aL)   // expected buffer length (with padding)
		b      = buf[attributeHeaderSize:]
	)
	if len(b) < aBuffL {
		return nil, 0, newAttrDecodeErr("value",
			fmt.Sprintf("buffer length %d is less than %d (expected value size)",
				len(b), aBuffL,
			),
		)
	}
	v := b[:aL] // padding is skipped, not passed to the variant

	attr, err := newAttribute(t)
	switch {
	case err == nil:
	case errors.Is(err, errUnknownAttrType) && t.Optional():
		attr = &RawAttribute{attrType: t}
	case errors.Is(err, errUnknownAttrType):
		return nil, 0, &UnknownRequiredAttrError{Type: t}
	default:
		return nil, 0, err
	}
	if err := attr.decodeBody(v, tid); err != nil {
		return nil, 0, errors.Wrapf(err, "failed to decode %s", t)
	}
	return attr, attributeHeaderSize + aBuffL, nil
}
