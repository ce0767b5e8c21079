//go:build !js
// +build !js

package stunattr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageIntegrity(t *testing.T) {
	attr := &MessageIntegrity{Digest: bytes.Repeat([]byte{0xAB}, 20)}
	assert.Equal(t, uint16(20), attr.DataLength())
	b, err := EncodeAttribute(attr, TransactionID{})
	assert.NoError(t, err)
	assert.Len(t, b, 24)

	got, _, err := DecodeAttribute(b, TransactionID{})
	assert.NoError(t, err)
	assert.Equal(t, attr.Digest, got.(*MessageIntegrity).Digest)
	assert.True(t, Equal(attr, got))

	t.Run("BadEncodeLength", func(t *testing.T) {
		_, err := EncodeAttribute(&MessageIntegrity{Digest: []byte{1, 2, 3}}, TransactionID{})
		assert.Error(t, err)
	})
	t.Run("BadDecodeLength", func(t *testing.T) {
		buf := []byte{0x00, 0x08, 0x00, 0x04, 0x01, 0x02, 0x03, 0x04}
		_, _, err := DecodeAttribute(buf, TransactionID{})
		assert.ErrorIs(t, err, ErrAttrSizeInvalid)
	})
}

func TestChangeRequest(t *testing.T) {
	for _, tc := range []struct {
		attr *ChangeRequest
		word []byte
	}{
		{&ChangeRequest{}, []byte{0x00, 0x00, 0x00, 0x00}},
		{&ChangeRequest{ChangeIP: true}, []byte{0x00, 0x00, 0x00, 0x04}},
		{&ChangeRequest{ChangePort: true}, []byte{0x00, 0x00, 0x00, 0x02}},
		{&ChangeRequest{ChangeIP: true, ChangePort: true}, []byte{0x00, 0x00, 0x00, 0x06}},
	} {
		b, err := EncodeAttribute(tc.attr, TransactionID{})
		assert.NoError(t, err)
		assert.Equal(t, tc.word, b[4:])
		got, _, err := DecodeAttribute(b, TransactionID{})
		assert.NoError(t, err)
		assert.Equal(t, tc.attr, got)
	}
}
