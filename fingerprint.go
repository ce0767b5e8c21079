package stunattr

import (
	"hash/crc32"
)

const (
	fingerprintXORValue uint32 = 0x5354554e
	fingerprintSize            = 4 // 32 bit
)

// FingerprintValue returns CRC-32 of b XOR-ed by 0x5354554e.
//
// The value of the attribute is computed as the CRC-32 of the STUN message
// up to (but excluding) the FINGERPRINT attribute itself, XOR'ed with
// the 32-bit value 0x5354554e (the XOR helps in cases where an
// application packet is also using CRC-32 in it).
func FingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXORValue // XOR
}

// Fingerprint implements FINGERPRINT attribute: the 32 bit checksum of
// the message up to this attribute. Computing the checksum over a full
// message is the framing layer's job (see FingerprintValue); at this
// layer the attribute simply carries the value.
//
// RFC 5389 Section 15.5.
type Fingerprint struct {
	CRC uint32
}

// Type returns AttrFingerprint.
func (a *Fingerprint) Type() AttrType { return AttrFingerprint }

// Name returns the human label of the attribute type.
func (a *Fingerprint) Name() string { return AttrFingerprint.String() }

// DataLength returns 4.
func (a *Fingerprint) DataLength() uint16 { return fingerprintSize }

func (a *Fingerprint) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, fingerprintSize)
	bin.PutUint32(b, a.CRC)
	return append(dst, b...), nil
}

func (a *Fingerprint) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrFingerprint, len(v), fingerprintSize); err != nil {
		return err
	}
	a.CRC = bin.Uint32(v)
	return nil
}
