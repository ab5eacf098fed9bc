package ringcoder

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip checks that Encode followed by Decode with the same
// parameters always recovers the original bits, for arbitrary input
// bytes and bit/context lengths, and that neither call panics.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{}, 0, 5)
	f.Add([]byte{0x00}, 8, 1)
	f.Add([]byte{0xFF}, 8, 1)
	f.Add([]byte("Hello, Glorious Coding!"), 184, 5)
	f.Add([]byte{0xAB}, 5, 3)
	f.Add([]byte{0x5A, 0x3C, 0x99}, 24, 64)

	f.Fuzz(func(t *testing.T, data []byte, bitLength, contextLength int) {
		if bitLength < 0 || bitLength > len(data)*8+64 {
			return
		}
		if contextLength <= 0 || contextLength > 1<<16 {
			return
		}

		encoded, err := Encode(data, bitLength, contextLength)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := Decode(encoded, bitLength, contextLength)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if want := (bitLength + 7) / 8; len(decoded) != want {
			t.Fatalf("len(decoded) = %d, want %d", len(decoded), want)
		}
		if want := firstBits(data, bitLength); !bytes.Equal(decoded, want) {
			t.Fatalf("decoded = %v, want %v", decoded, want)
		}
	})
}

// FuzzDecodeNeverPanics checks that Decode tolerates arbitrary encoded
// byte buffers it did not itself produce: no error is raised on
// malformed encoded input, the decoder just returns some byte sequence.
func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte{}, 0, 1)
	f.Add([]byte{0x00, 0x00, 0x00, 0x00}, 16, 4)
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 32, 8)

	f.Fuzz(func(t *testing.T, data []byte, bitLength, contextLength int) {
		if bitLength < 0 || bitLength > 1<<16 {
			return
		}
		if contextLength <= 0 || contextLength > 1<<16 {
			return
		}
		_, _ = Decode(data, bitLength, contextLength)
	})
}
