package coder

import (
	"testing"

	"github.com/glorious-coding/ringcoder/internal/bitio"
)

// constantOracle always returns the same fixed-point probability,
// independent of context statistics -- enough to exercise the interval
// machinery without internal/ring or internal/prob.
func constantOracle(p1 uint32) OracleFunc {
	return func(countOnes, contextLength int) uint32 { return p1 }
}

func TestRoundTripConstantOracle(t *testing.T) {
	tests := []struct {
		name string
		bits []int
	}{
		{"empty", nil},
		{"single_zero", []int{0}},
		{"single_one", []int{1}},
		{"alternating", []int{0, 1, 0, 1, 0, 1, 0, 1}},
		{"all_zeros", []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{"all_ones", []int{1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := bitio.NewWriter()
			enc := NewEncodeState(constantOracle(FixedScale / 2))
			for _, bit := range tt.bits {
				enc.EncodeBit(bit, 0, 0, w)
			}
			enc.Finish(w)

			r := bitio.NewReader(w.Bytes())
			dec := NewDecodeState(constantOracle(FixedScale/2), r)
			for i, want := range tt.bits {
				if got := dec.DecodeBit(0, 0, r); got != want {
					t.Errorf("bit %d: got %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestRoundTripVaryingContext(t *testing.T) {
	bits := make([]int, 500)
	countOnes := make([]int, len(bits))
	running := 0
	for i := range bits {
		bits[i] = i % 3 / 2 // mostly 0, some 1
		countOnes[i] = running
		if bits[i] == 1 {
			running++
		}
	}

	// A Laplace-like estimator, inlined here rather than imported from
	// internal/prob so this package's tests don't depend on it.
	oracle := func(co, cl int) uint32 {
		num := uint64(co + 1)
		den := uint64(cl + 2)
		p := (num*FixedScale + den/2) / den
		if p < 1 {
			p = 1
		}
		if p >= FixedScale {
			p = FixedScale - 1
		}
		return uint32(p)
	}

	w := bitio.NewWriter()
	enc := NewEncodeState(oracle)
	for i, bit := range bits {
		enc.EncodeBit(bit, countOnes[i], 64, w)
	}
	enc.Finish(w)

	r := bitio.NewReader(w.Bytes())
	dec := NewDecodeState(oracle, r)
	for i, want := range bits {
		if got := dec.DecodeBit(countOnes[i], 64, r); got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestLongSequenceRoundTrip(t *testing.T) {
	n := 4000
	bits := make([]int, n)
	for i := range bits {
		bits[i] = (i * 2654435761) % 7 % 2 // deterministic pseudo-random
	}

	w := bitio.NewWriter()
	enc := NewEncodeState(constantOracle(FixedScale / 3))
	for _, bit := range bits {
		enc.EncodeBit(bit, 0, 1, w)
	}
	enc.Finish(w)

	r := bitio.NewReader(w.Bytes())
	dec := NewDecodeState(constantOracle(FixedScale/3), r)
	for i, want := range bits {
		if got := dec.DecodeBit(0, 1, r); got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}
