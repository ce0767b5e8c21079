package stunattr

import (
	"testing"
)

func FuzzDecodeAttribute(f *testing.F) {
	f.Add([]byte{0x00, 0x25, 0x00, 0x00})
	f.Add([]byte{0x00, 0x0D, 0x00, 0x04, 0x00, 0x00, 0x0E, 0x10})
	f.Add([]byte{0x80, 0xFF, 0x00, 0x03, 0xDE, 0xAD, 0xBE, 0x00})

	var tid TransactionID

	f.Fuzz(func(t *testing.T, data []byte) {
		attr, n, err := DecodeAttribute(data, tid)
		if err != nil {
			return // We expect invalid attributes to fail here
		}
		if n > len(data) {
			t.Fatalf("consumed %d bytes of %d", n, len(data))
		}

		// A successfully decoded attribute must encode again, and the
		// re-encoded form must decode to an equal attribute.
		buf, err := EncodeAttribute(attr, tid)
		if err != nil {
			t.Fatalf("Failed to encode: %s", err)
		}

		attr2, _, err := DecodeAttribute(buf, tid)
		if err != nil {
			t.Fatalf("Failed to decode: %s", err)
		}

		if !Equal(attr, attr2) {
			t.Fatal("attr2 != attr")
		}
	})
}

func FuzzDecodeAll(f *testing.F) {
	f.Add([]byte{0x00, 0x25, 0x00, 0x00, 0x80, 0xFF, 0x00, 0x00})

	var tid TransactionID

	f.Fuzz(func(t *testing.T, data []byte) {
		attrs, err := DecodeAll(data, tid)
		if err != nil {
			return
		}

		buf, err := attrs.EncodeAll(tid)
		if err != nil {
			t.Fatalf("Failed to encode: %s", err)
		}

		attrs2, err := DecodeAll(buf, tid)
		if err != nil {
			t.Fatalf("Failed to decode: %s", err)
		}

		if len(attrs2) != len(attrs) {
			t.Fatal("attributes length mismatch")
		}
	})
}
