//go:build !js
// +build !js

package stunattr

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintValue(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	assert.Equal(t, crc32.ChecksumIEEE(b)^fingerprintXORValue, FingerprintValue(b))
}

func TestFingerprint(t *testing.T) {
	attr := &Fingerprint{CRC: FingerprintValue([]byte("header and attributes"))}
	b, err := EncodeAttribute(attr, TransactionID{})
	assert.NoError(t, err)
	assert.Len(t, b, 8)
	assert.Equal(t, uint16(0x8028), bin.Uint16(b[0:2]))

	got, _, err := DecodeAttribute(b, TransactionID{})
	assert.NoError(t, err)
	assert.Equal(t, attr.CRC, got.(*Fingerprint).CRC)
	assert.True(t, Equal(attr, got))

	t.Run("BadLength", func(t *testing.T) {
		buf := []byte{0x80, 0x28, 0x00, 0x02, 0x01, 0x02, 0x00, 0x00}
		_, _, err := DecodeAttribute(buf, TransactionID{})
		assert.ErrorIs(t, err, ErrAttrSizeInvalid)
	})
}
