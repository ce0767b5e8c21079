//go:build !js
// +build !js

package stunattr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAttribute_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		attr *TextAttribute
	}{
		{"Username", NewUsername("bob")},
		{"Realm", NewRealm("example.org")},
		{"Nonce", NewNonce("dcd98b7102dd2f0e8b11d0f600bfb0c093")},
		{"Software", NewSoftware("signalpath/stunattr v1")},
		{"Password", NewText(AttrPassword, []byte("secret"))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := EncodeAttribute(tc.attr, TransactionID{})
			assert.NoError(t, err)
			got, n, err := DecodeAttribute(b, TransactionID{})
			assert.NoError(t, err)
			assert.Equal(t, len(b), n)
			assert.True(t, Equal(tc.attr, got))
			assert.Equal(t, tc.attr.String(), got.(*TextAttribute).String())
		})
	}
}

func TestTextAttribute_ZeroLength(t *testing.T) {
	attr := NewUsername("")
	assert.Zero(t, attr.DataLength())
	b, err := EncodeAttribute(attr, TransactionID{})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x06, 0x00, 0x00}, b)
	got, _, err := DecodeAttribute(b, TransactionID{})
	assert.NoError(t, err)
	assert.True(t, Equal(attr, got))
}

func TestTextAttribute_LongValue(t *testing.T) {
	// The codec does not clamp below the 16 bit length field: a realm
	// longer than the protocol's recommended cap still round-trips.
	attr := NewRealm(strings.Repeat("a", 1000))
	b, err := EncodeAttribute(attr, TransactionID{})
	assert.NoError(t, err)
	got, _, err := DecodeAttribute(b, TransactionID{})
	assert.NoError(t, err)
	assert.True(t, Equal(attr, got))
}

func TestTextAttribute_DataLength(t *testing.T) {
	attr := NewSoftware("ab")
	assert.Equal(t, uint16(2), attr.DataLength())
	// DataLength tracks mutation, it is never cached.
	attr.Raw = append(attr.Raw, 'c')
	assert.Equal(t, uint16(3), attr.DataLength())
}
