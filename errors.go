package stunattr

import (
	"fmt"
)

// Error is error type for constant errors in stunattr package.
//
// See http://dave.cheney.net/2016/04/07/constant-errors for more info.
type Error string

func (e Error) Error() string {
	return string(e)
}

var (
	// ErrAttributeNotFound means that there is no such attribute.
	ErrAttributeNotFound Error = "attribute not found"

	// ErrAttrSizeInvalid means that the attribute value length does not
	// match the size the attribute type requires.
	ErrAttrSizeInvalid Error = "attribute size is invalid"

	// ErrAttrSizeOverflow means that the attribute value is longer than
	// the size the attribute type allows.
	ErrAttrSizeOverflow Error = "attribute size overflow"

	// ErrValueTooLarge means that an attribute body does not fit the
	// 16 bit length field.
	ErrValueTooLarge Error = "attribute value exceeds 65535 bytes"
)

// DecodeErr records an error and place when it is occurred.
type DecodeErr struct {
	Place   DecodeErrPlace
	Message string
}

// IsPlaceParent reports if error place parent is p.
func (e DecodeErr) IsPlaceParent(p string) bool {
	return e.Place.Parent == p
}

// IsPlaceChildren reports if error place children is c.
func (e DecodeErr) IsPlaceChildren(c string) bool {
	return e.Place.Children == c
}

// IsPlace reports if error place is p.
func (e DecodeErr) IsPlace(p DecodeErrPlace) bool {
	return e.Place == p
}

// DecodeErrPlace records a place where error is occurred.
type DecodeErrPlace struct {
	Parent   string
	Children string
}

func (p DecodeErrPlace) String() string {
	return fmt.Sprintf("%s/%s", p.Parent, p.Children)
}

func (e DecodeErr) Error() string {
	return fmt.Sprintf("BadFormat for %s: %s",
		e.Place,
		e.Message,
	)
}

func newDecodeErr(parent, children, message string) DecodeErr {
	return DecodeErr{
		Place:   DecodeErrPlace{Parent: parent, Children: children},
		Message: message,
	}
}

func newAttrDecodeErr(children, message string) DecodeErr {
	return newDecodeErr("attribute", children, message)
}

// UnknownRequiredAttrError is returned when a decoder meets an attribute
// type that is not registered and has the comprehension-optional bit
// clear. The containing message must be rejected.
type UnknownRequiredAttrError struct {
	Type AttrType
}

func (e *UnknownRequiredAttrError) Error() string {
	return fmt.Sprintf("unknown comprehension-required attribute 0x%04x", uint16(e.Type))
}

// UnsupportedAttrTypeError is returned when an attribute type is known
// to the registry but has no codec wired for it. It indicates an
// implementation gap, not malformed input.
type UnsupportedAttrTypeError struct {
	Type AttrType
}

func (e *UnsupportedAttrTypeError) Error() string {
	return fmt.Sprintf("no codec wired for attribute %s", e.Type)
}
