package stunattr

import (
	"fmt"

	"github.com/pkg/errors"
)

// messageIntegritySize is the size of HMAC-SHA1 digest in bytes.
const messageIntegritySize = 20

// MessageIntegrity implements MESSAGE-INTEGRITY attribute. It carries
// the HMAC-SHA1 digest as opaque bytes: computing and verifying the
// HMAC over the message requires the key and the framed message, both
// of which belong to the layers above.
//
// RFC 5389 Section 15.4.
type MessageIntegrity struct {
	Digest []byte
}

// Type returns AttrMessageIntegrity.
func (a *MessageIntegrity) Type() AttrType { return AttrMessageIntegrity }

// Name returns the human label of the attribute type.
func (a *MessageIntegrity) Name() string { return AttrMessageIntegrity.String() }

// DataLength returns 20.
func (a *MessageIntegrity) DataLength() uint16 { return messageIntegritySize }

func (a *MessageIntegrity) String() string {
	return fmt.Sprintf("MESSAGE-INTEGRITY %x", a.Digest)
}

func (a *MessageIntegrity) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	if len(a.Digest) != messageIntegritySize {
		return nil, errors.Errorf("invalid digest length %d != %d (expected)",
			len(a.Digest), messageIntegritySize,
		)
	}
	return append(dst, a.Digest...), nil
}

func (a *MessageIntegrity) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrMessageIntegrity, len(v), messageIntegritySize); err != nil {
		return err
	}
	a.Digest = append(a.Digest[:0], v...)
	return nil
}
