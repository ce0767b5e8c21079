package stunattr

const (
	changeRequestSize = 4 // 32 bit
	changeIPFlag      = 0x04
	changePortFlag    = 0x02
)

// ChangeRequest implements the classic CHANGE-REQUEST attribute: a
// 32 bit flag word asking the server to answer from a different IP
// and/or port.
//
// RFC 3489 Section 11.2.4.
type ChangeRequest struct {
	ChangeIP   bool
	ChangePort bool
}

// Type returns AttrChangeRequest.
func (a *ChangeRequest) Type() AttrType { return AttrChangeRequest }

// Name returns the human label of the attribute type.
func (a *ChangeRequest) Name() string { return AttrChangeRequest.String() }

// DataLength returns 4.
func (a *ChangeRequest) DataLength() uint16 { return changeRequestSize }

func (a *ChangeRequest) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	var flags uint32
	if a.ChangeIP {
		flags |= changeIPFlag
	}
	if a.ChangePort {
		flags |= changePortFlag
	}
	b := make([]byte, changeRequestSize)
	bin.PutUint32(b, flags)
	return append(dst, b...), nil
}

func (a *ChangeRequest) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrChangeRequest, len(v), changeRequestSize); err != nil {
		return err
	}
	flags := bin.Uint32(v)
	a.ChangeIP = flags&changeIPFlag != 0
	a.ChangePort = flags&changePortFlag != 0
	return nil
}
