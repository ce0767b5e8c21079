package stunattr

import (
	"fmt"
	"strings"
)

// UnknownAttributes implements UNKNOWN-ATTRIBUTES attribute: the list
// of 16 bit type codes a server did not understand, present in 420
// error responses.
//
// RFC 5389 Section 15.9.
type UnknownAttributes struct {
	Types []AttrType
}

// Type returns AttrUnknownAttributes.
func (a *UnknownAttributes) Type() AttrType { return AttrUnknownAttributes }

// Name returns the human label of the attribute type.
func (a *UnknownAttributes) Name() string { return AttrUnknownAttributes.String() }

// DataLength returns 2 bytes per listed type.
func (a *UnknownAttributes) DataLength() uint16 {
	return uint16(2 * len(a.Types))
}

func (a *UnknownAttributes) String() string {
	s := make([]string, len(a.Types))
	for i, t := range a.Types {
		s[i] = t.String()
	}
	return strings.Join(s, ", ")
}

func (a *UnknownAttributes) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, 2*len(a.Types))
	for i, t := range a.Types {
		bin.PutUint16(b[i*2:], t.Value())
	}
	return append(dst, b...), nil
}

func (a *UnknownAttributes) decodeBody(v []byte, _ TransactionID) error {
	if len(v)%2 != 0 {
		return newDecodeErr("unknown-attributes", "length",
			fmt.Sprintf("%d is not a multiple of 2", len(v)),
		)
	}
	a.Types = a.Types[:0]
	for i := 0; i < len(v); i += 2 {
		a.Types = append(a.Types, AttrType(bin.Uint16(v[i:i+2])))
	}
	return nil
}
