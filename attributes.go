// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"fmt"
	"strings"
)

// Attributes is the ordered attribute collection of one message.
// Insertion order is preserved on encode (MESSAGE-INTEGRITY and
// FINGERPRINT must come last, which the composing layer arranges by
// adding them last). Duplicate types are legal; Get returns the first
// match and GetAll returns every match.
//
// An Attributes value is owned by one message-processing context and
// needs no locking.
type Attributes []Attribute

// Add appends attr, keeping insertion order.
func (a *Attributes) Add(attr Attribute) {
	*a = append(*a, attr)
}

// Get returns the first attribute of type t.
func (a Attributes) Get(t AttrType) (Attribute, bool) {
	for _, attr := range a {
		if attr.Type() == t {
			return attr, true
		}
	}
	return nil, false
}

// GetAll returns all attributes of type t in insertion order.
func (a Attributes) GetAll(t AttrType) []Attribute {
	var got []Attribute
	for _, attr := range a {
		if attr.Type() == t {
			got = append(got, attr)
		}
	}
	return got
}

// AppendTo appends the TLV encoding of every attribute to dst in
// insertion order.
func (a Attributes) AppendTo(dst []byte, tid TransactionID) ([]byte, error) {
	var err error
	for _, attr := range a {
		if dst, err = AppendAttribute(dst, attr, tid); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// EncodeAll returns the concatenated TLV encoding of all attributes in
// insertion order.
func (a Attributes) EncodeAll(tid TransactionID) ([]byte, error) {
	return a.AppendTo(nil, tid)
}

func (a Attributes) String() string {
	s := make([]string, len(a))
	for i, attr := range a {
		s[i] = fmt.Sprintf("%v", attr)
	}
	return strings.Join(s, ", ")
}

// DecodeAll decodes attributes from buf until it is exhausted.
//
// Decoding stops at the first malformed attribute or unknown
// comprehension-required type. The attributes decoded before the
// failure point are returned alongside the error, so the message layer
// can choose between discarding the message and reporting a partial
// result. Unknown comprehension-optional attributes are not errors:
// they come back as *RawAttribute and re-encode byte-identically.
func DecodeAll(buf []byte, tid TransactionID) (Attributes, error) {
	var attrs Attributes
	for offset := 0; offset < len(buf); {
		attr, n, err := DecodeAttribute(buf[offset:], tid)
		if err != nil {
			return attrs, err
		}
		attrs = append(attrs, attr)
		offset += n
	}
	return attrs, nil
}
