package stunattr

import (
	"fmt"
)

const (
	prioritySize   = 4 // 32 bit
	tieBreakerSize = 8 // 64 bit
)

// Priority implements PRIORITY attribute: a single 32 bit candidate
// priority value.
//
// RFC 8445 Section 16.1.
type Priority struct {
	Priority uint32
}

// Type returns AttrPriority.
func (a *Priority) Type() AttrType { return AttrPriority }

// Name returns the human label of the attribute type.
func (a *Priority) Name() string { return AttrPriority.String() }

// DataLength returns 4.
func (a *Priority) DataLength() uint16 { return prioritySize }

func (a *Priority) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, prioritySize)
	bin.PutUint32(b, a.Priority)
	return append(dst, b...), nil
}

func (a *Priority) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrPriority, len(v), prioritySize); err != nil {
		return err
	}
	a.Priority = bin.Uint32(v)
	return nil
}

// UseCandidate implements USE-CANDIDATE attribute. It carries no value:
// presence alone nominates the candidate pair.
type UseCandidate struct{}

// Type returns AttrUseCandidate.
func (a *UseCandidate) Type() AttrType { return AttrUseCandidate }

// Name returns the human label of the attribute type.
func (a *UseCandidate) Name() string { return AttrUseCandidate.String() }

// DataLength returns 0.
func (a *UseCandidate) DataLength() uint16 { return 0 }

func (a *UseCandidate) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return dst, nil
}

func (a *UseCandidate) decodeBody(v []byte, _ TransactionID) error {
	return CheckSize(AttrUseCandidate, len(v), 0)
}

// ICEControlled implements ICE-CONTROLLED attribute: the 64 bit
// tie-breaker of an agent in the controlled role.
type ICEControlled struct {
	TieBreaker uint64
}

// Type returns AttrICEControlled.
func (a *ICEControlled) Type() AttrType { return AttrICEControlled }

// Name returns the human label of the attribute type.
func (a *ICEControlled) Name() string { return AttrICEControlled.String() }

// DataLength returns 8.
func (a *ICEControlled) DataLength() uint16 { return tieBreakerSize }

func (a *ICEControlled) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return appendTieBreaker(dst, a.TieBreaker), nil
}

func (a *ICEControlled) decodeBody(v []byte, _ TransactionID) error {
	t, err := decodeTieBreaker(AttrICEControlled, v)
	if err != nil {
		return err
	}
	a.TieBreaker = t
	return nil
}

// ICEControlling implements ICE-CONTROLLING attribute: the 64 bit
// tie-breaker of an agent in the controlling role.
type ICEControlling struct {
	TieBreaker uint64
}

// Type returns AttrICEControlling.
func (a *ICEControlling) Type() AttrType { return AttrICEControlling }

// Name returns the human label of the attribute type.
func (a *ICEControlling) Name() string { return AttrICEControlling.String() }

// DataLength returns 8.
func (a *ICEControlling) DataLength() uint16 { return tieBreakerSize }

func (a *ICEControlling) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return appendTieBreaker(dst, a.TieBreaker), nil
}

func (a *ICEControlling) decodeBody(v []byte, _ TransactionID) error {
	t, err := decodeTieBreaker(AttrICEControlling, v)
	if err != nil {
		return err
	}
	a.TieBreaker = t
	return nil
}

func appendTieBreaker(dst []byte, tieBreaker uint64) []byte {
	b := make([]byte, tieBreakerSize)
	bin.PutUint64(b, tieBreaker)
	return append(dst, b...)
}

func decodeTieBreaker(t AttrType, v []byte) (uint64, error) {
	if len(v) != tieBreakerSize {
		return 0, newDecodeErr(t.String(), "tie-breaker",
			fmt.Sprintf("invalid length %d != %d (expected)", len(v), tieBreakerSize),
		)
	}
	return bin.Uint64(v), nil
}
