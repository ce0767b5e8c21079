package stunattr

// TextAttribute is the shared representation of string-valued
// attributes: USERNAME, REALM, NONCE, SOFTWARE and the legacy PASSWORD.
// The body is the raw byte sequence, no terminator, no structure.
//
// The codec does not clamp the value beyond the 16 bit TLV length.
// Protocol-level caps (USERNAME below 513 bytes, REALM and NONCE below
// 763 bytes and 128 characters) belong to the layer composing messages.
type TextAttribute struct {
	attrType AttrType
	Raw      []byte
}

// NewText returns a TextAttribute of type t with raw value.
func NewText(t AttrType, raw []byte) *TextAttribute {
	return &TextAttribute{attrType: t, Raw: raw}
}

// NewUsername returns USERNAME attribute with provided value.
func NewUsername(username string) *TextAttribute {
	return NewText(AttrUsername, []byte(username))
}

// NewRealm returns REALM attribute with provided value.
func NewRealm(realm string) *TextAttribute {
	return NewText(AttrRealm, []byte(realm))
}

// NewNonce returns NONCE attribute with provided value.
func NewNonce(nonce string) *TextAttribute {
	return NewText(AttrNonce, []byte(nonce))
}

// NewSoftware returns SOFTWARE attribute with provided value.
func NewSoftware(software string) *TextAttribute {
	return NewText(AttrSoftware, []byte(software))
}

func newTextAttr(t AttrType) Attribute { return &TextAttribute{attrType: t} }

// Type returns the attribute type code.
func (a *TextAttribute) Type() AttrType { return a.attrType }

// Name returns the human label of the attribute type.
func (a *TextAttribute) Name() string { return a.attrType.String() }

// DataLength returns current length of the value.
func (a *TextAttribute) DataLength() uint16 { return uint16(len(a.Raw)) }

func (a *TextAttribute) String() string {
	return string(a.Raw)
}

func (a *TextAttribute) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return append(dst, a.Raw...), nil
}

func (a *TextAttribute) decodeBody(v []byte, _ TransactionID) error {
	a.Raw = append(a.Raw[:0], v...)
	return nil
}
