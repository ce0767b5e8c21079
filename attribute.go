// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"bytes"
	"fmt"
)

// Attribute is a single STUN/TURN/ICE attribute. The concrete variants
// live in this package and form a closed set dispatched by type code;
// the body codec methods are unexported to keep it closed.
//
// An attribute's type is fixed at construction and never changes.
// DataLength always reflects the current field values, it is computed,
// not cached.
type Attribute interface {
	// Type returns the 16 bit attribute type code.
	Type() AttrType

	// DataLength returns the wire length of the encoded body in bytes,
	// before padding. Callers derive the padded length themselves.
	DataLength() uint16

	// Name returns the human label of the attribute. Debug output only:
	// it never influences encoding, decoding or equality.
	Name() string

	// appendBody appends the exact body bytes (no header, no padding)
	// to dst. XOR address attributes mix tid into their wire form,
	// everything else ignores it.
	appendBody(dst []byte, tid TransactionID) ([]byte, error)

	// decodeBody populates the variant from the exact body bytes
	// (padding already stripped). Implementations validate len(v)
	// before interpreting bytes and never read past the slice.
	decodeBody(v []byte, tid TransactionID) error
}

// Equal reports structural equality of two attributes: same type code,
// same data length and byte-identical encoded body. It is the single
// equality definition for all variants, names and concrete Go types do
// not participate.
//
// Bodies are rendered with the zero transaction ID. The XOR transform
// is a bijection for a fixed mask, so this compares XOR address
// attributes by their cleartext address and port as intended.
func Equal(a, b Attribute) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.DataLength() != b.DataLength() {
		return false
	}
	var tid TransactionID
	aBody, err := a.appendBody(nil, tid)
	if err != nil {
		return false
	}
	bBody, err := b.appendBody(nil, tid)
	if err != nil {
		return false
	}
	return bytes.Equal(aBody, bBody)
}

// RawAttribute is an attribute kept as unparsed value bytes. Decoders
// produce it for comprehension-optional type codes the registry does
// not recognize, so a relayed message re-encodes them verbatim.
type RawAttribute struct {
	attrType AttrType
	Value    []byte
}

// NewRawAttribute returns a RawAttribute of type t echoing value.
func NewRawAttribute(t AttrType, value []byte) *RawAttribute {
	return &RawAttribute{attrType: t, Value: value}
}

// Type returns the attribute type code.
func (a *RawAttribute) Type() AttrType { return a.attrType }

// DataLength returns current length of the raw value.
func (a *RawAttribute) DataLength() uint16 { return uint16(len(a.Value)) }

// Name returns the human label of the attribute type.
func (a *RawAttribute) Name() string { return a.attrType.String() }

func (a *RawAttribute) String() string {
	return fmt.Sprintf("%s: 0x%x", a.attrType, a.Value)
}

func (a *RawAttribute) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return append(dst, a.Value...), nil
}

func (a *RawAttribute) decodeBody(v []byte, _ TransactionID) error {
	a.Value = append(a.Value[:0], v...)
	return nil
}
