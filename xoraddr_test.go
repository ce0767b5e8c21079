// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

//go:build !js
// +build !js

package stunattr

import (
	"encoding/base64"
	"encoding/hex"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTransactionID(tb testing.TB, b64 string) TransactionID {
	tb.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	assert.NoError(tb, err)
	assert.Len(tb, raw, TransactionIDSize)
	var tid TransactionID
	copy(tid[:], raw)
	return tid
}

func TestXORAddress_Decode(t *testing.T) {
	// Captured XOR-MAPPED-ADDRESS value for a known transaction.
	tid := testTransactionID(t, "jxhBARZwX+rsC6er")
	value, err := hex.DecodeString("00019cd5f49f38ae")
	assert.NoError(t, err)
	buf := append([]byte{0x00, 0x20, 0x00, 0x08}, value...)

	attr, n, err := DecodeAttribute(buf, tid)
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
	addr, ok := attr.(*XORAddress)
	assert.True(t, ok)
	assert.True(t, addr.IP.Equal(net.ParseIP("213.141.156.236")))
	assert.Equal(t, 48583, addr.Port)

	// In-memory fields hold cleartext, re-encoding restores the wire form.
	out, err := EncodeAttribute(addr, tid)
	assert.NoError(t, err)
	assert.Equal(t, buf, out)
}

func TestXORAddress_Symmetry(t *testing.T) {
	tid := testTransactionID(t, "jxhBARZwX+rsC6er")
	t.Run("IPv4", func(t *testing.T) {
		attr := NewXORMappedAddress(net.ParseIP("192.0.2.1"), 32853)
		assert.Equal(t, uint16(8), attr.DataLength())
		b, err := EncodeAttribute(attr, tid)
		assert.NoError(t, err)

		got, _, err := DecodeAttribute(b, tid)
		assert.NoError(t, err)
		addr, ok := got.(*XORAddress)
		assert.True(t, ok)
		assert.True(t, addr.IP.Equal(net.ParseIP("192.0.2.1")))
		assert.Equal(t, 32853, addr.Port)
		assert.True(t, Equal(attr, got))
	})
	t.Run("IPv6", func(t *testing.T) {
		attr := NewXORPeerAddress(net.ParseIP("2001:db8::68"), 5555)
		assert.Equal(t, uint16(20), attr.DataLength())
		b, err := EncodeAttribute(attr, tid)
		assert.NoError(t, err)

		got, _, err := DecodeAttribute(b, tid)
		assert.NoError(t, err)
		addr, ok := got.(*XORAddress)
		assert.True(t, ok)
		assert.Equal(t, AttrXORPeerAddress, addr.Type())
		assert.True(t, addr.IP.Equal(net.ParseIP("2001:db8::68")))
		assert.Equal(t, 5555, addr.Port)
	})
	t.Run("ZeroTransactionID", func(t *testing.T) {
		attr := NewXORRelayedAddress(net.ParseIP("2001:db8::1"), 1)
		b, err := EncodeAttribute(attr, TransactionID{})
		assert.NoError(t, err)
		got, _, err := DecodeAttribute(b, TransactionID{})
		assert.NoError(t, err)
		assert.True(t, Equal(attr, got))
	})
}

func TestXORAddress_WrongTransactionID(t *testing.T) {
	// The IPv6 transform depends on the transaction ID: decoding with a
	// different one yields a different address, not an error.
	attr := NewXORMappedAddress(net.ParseIP("2001:db8::68"), 5555)
	b, err := EncodeAttribute(attr, testTransactionID(t, "jxhBARZwX+rsC6er"))
	assert.NoError(t, err)
	got, _, err := DecodeAttribute(b, testTransactionID(t, "AAAAAAAAAAAAAAAA"))
	assert.NoError(t, err)
	addr := got.(*XORAddress)
	assert.False(t, addr.IP.Equal(net.ParseIP("2001:db8::68")))
}

func TestXORAddress_BadInput(t *testing.T) {
	t.Run("BadFamily", func(t *testing.T) {
		buf := []byte{0x00, 0x20, 0x00, 0x08, 0x00, 0x04, 0x9c, 0xd5, 0xf4, 0x9f, 0x38, 0xae}
		_, _, err := DecodeAttribute(buf, TransactionID{})
		var dErr DecodeErr
		assert.ErrorAs(t, err, &dErr)
		assert.True(t, dErr.IsPlaceChildren("family"))
	})
	t.Run("BadIPLength", func(t *testing.T) {
		attr := NewXORMappedAddress(net.IP{1, 2, 3, 4, 5}, 80)
		_, err := EncodeAttribute(attr, TransactionID{})
		assert.ErrorIs(t, err, ErrBadIPLength)
	})
}

func BenchmarkXORAddress_Encode(b *testing.B) {
	attr := NewXORMappedAddress(net.ParseIP("192.168.1.32"), 3654)
	var tid TransactionID
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeAttribute(attr, tid); err != nil {
			b.Fatal(err)
		}
	}
}
