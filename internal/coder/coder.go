// Package coder implements the binary arithmetic coding state machine:
// the low/high interval, its renormalization into bits-to-follow
// ("E1/E2/E3") output bits, and the symmetric encode and decode
// narrowing steps.
//
// Grounded on internal/entropy/mqc.go's MQEncoder/MQDecoder: the same
// division into a state struct holding interval registers, a
// step function that narrows the interval against a probability, and a
// separate renormalization loop draining ready bits through a
// byte-output helper. The algorithm itself cannot be the MQ coder's --
// the MQ coder renormalizes by comparing its A register against 0x8000
// and resolves carries by 0xFF-stuffing in byteOut, with no
// bits-to-follow concept, whereas this package implements the classic
// low/high coder with an explicit bits-to-follow carry counter -- so
// this is a rewrite in the same idiom, not a port of its code.
package coder

import "github.com/glorious-coding/ringcoder/internal/bitio"

// Precision is the interval register width in bits.
const Precision = 31

const (
	// TotalFrequency is 2^Precision.
	TotalFrequency = uint32(1) << Precision
	// Half is 2^(Precision-1).
	Half = uint32(1) << (Precision - 1)
	// Quarter is 2^(Precision-2).
	Quarter = uint32(1) << (Precision - 2)
	// ThreeQuarter is 3*Quarter.
	ThreeQuarter = 3 * Quarter
)

// FixedScale is the probability denominator the OracleFunc passed to
// this package is expressed in. Duplicated from internal/prob rather
// than imported: this package should not depend on anything beyond the
// oracle's numeric contract, so it takes a plain function value instead
// of importing internal/prob's Oracle interface.
const FixedScale = 1 << 16

// OracleFunc is the numeric contract the coder depends on: given the
// context's current running count of 1-bits and its capacity, return
// the fixed-point probability (out of FixedScale) that the next bit is
// 1. The caller (the driver, component E) is responsible for querying
// the context ring (component B) and wiring an internal/prob.Oracle's
// P1 method into this shape.
type OracleFunc func(countOnes, contextLength int) uint32

// scaledP0 computes the probability of a 0 bit, scaled to
// TotalFrequency.
func scaledP0(oracle OracleFunc, countOnes, contextLength int) uint32 {
	p1 := oracle(countOnes, contextLength)
	p0 := uint32(FixedScale) - p1

	scaled := uint64(p0) * uint64(TotalFrequency) / uint64(FixedScale)
	if scaled >= uint64(TotalFrequency) {
		scaled = uint64(TotalFrequency) - 1
	}
	return uint32(scaled)
}

// split computes the sub-interval boundary between the 0 and 1
// symbols: [low, split) encodes 0, [split, high] encodes 1.
func split(low, high, sp0 uint32) uint32 {
	rangeSize := high - low + 1
	return low + uint32((uint64(rangeSize)*uint64(sp0))/uint64(TotalFrequency))
}

// EncodeState is the per-call state of an encode operation.
type EncodeState struct {
	low, high    uint32
	bitsToFollow int
	oracle       OracleFunc
}

// NewEncodeState returns an EncodeState with the initial interval
// [0, TotalFrequency-1] and no pending follow bits.
func NewEncodeState(oracle OracleFunc) *EncodeState {
	return &EncodeState{low: 0, high: TotalFrequency - 1, oracle: oracle}
}

// EncodeBit narrows the interval for bit (0 or 1) using the context
// statistics (countOnes, contextLength) and renormalizes, emitting
// ready bits to w. The caller must update the context ring with this
// same bit immediately after EncodeBit returns.
func (s *EncodeState) EncodeBit(bit int, countOnes, contextLength int, w *bitio.Writer) {
	sp0 := scaledP0(s.oracle, countOnes, contextLength)
	sp := split(s.low, s.high, sp0)

	if bit == 0 {
		s.high = sp - 1
	} else {
		s.low = sp
	}
	s.renorm(w)
}

// renorm is the encode renormalization loop, repeating until none of
// the three conditions holds.
func (s *EncodeState) renorm(w *bitio.Writer) {
	for {
		switch {
		case s.high < Half:
			s.emitWithFollow(w, 0, 1)
		case s.low >= Half:
			s.emitWithFollow(w, 1, 0)
			s.low -= Half
			s.high -= Half
		case s.low >= Quarter && s.high < ThreeQuarter:
			s.bitsToFollow++
			s.low -= Quarter
			s.high -= Quarter
		default:
			return
		}
		s.low <<= 1
		s.high = (s.high << 1) | 1
	}
}

// emitWithFollow emits bit, then the pending bits-to-follow as follow,
// then clears the counter.
func (s *EncodeState) emitWithFollow(w *bitio.Writer, bit, follow int) {
	w.Emit(bit)
	for i := 0; i < s.bitsToFollow; i++ {
		w.Emit(follow)
	}
	s.bitsToFollow = 0
}

// Finish emits the termination bits after the last input bit has been
// encoded, then flushes w's partial trailing byte.
func (s *EncodeState) Finish(w *bitio.Writer) {
	s.bitsToFollow++
	if s.low < Quarter {
		s.emitWithFollow(w, 0, 1)
	} else {
		s.emitWithFollow(w, 1, 0)
	}
	w.Flush()
}

// DecodeState is the per-call state of a decode operation.
type DecodeState struct {
	low, high, value uint32
	oracle           OracleFunc
}

// NewDecodeState returns a DecodeState with the initial interval
// [0, TotalFrequency-1] and value loaded from the first Precision bits
// of r, MSB-first. Bits past the end of r's buffer read as 0 via
// internal/bitio.Reader's past-end contract.
func NewDecodeState(oracle OracleFunc, r *bitio.Reader) *DecodeState {
	var v uint32
	for i := 0; i < Precision; i++ {
		v = (v << 1) | uint32(r.ReadBit())
	}
	return &DecodeState{low: 0, high: TotalFrequency - 1, value: v, oracle: oracle}
}

// DecodeBit selects the next bit using the context statistics
// (countOnes, contextLength), narrows the interval accordingly, and
// renormalizes, pulling further bits from r as needed. The caller must
// update the context ring with the returned bit before the next call.
func (s *DecodeState) DecodeBit(countOnes, contextLength int, r *bitio.Reader) int {
	sp0 := scaledP0(s.oracle, countOnes, contextLength)

	rangeSize := s.high - s.low + 1
	scaledValue := (uint64(s.value-s.low+1)*uint64(TotalFrequency) - 1) / uint64(rangeSize)

	bit := 0
	if scaledValue >= uint64(sp0) {
		bit = 1
	}

	sp := split(s.low, s.high, sp0)
	if bit == 0 {
		s.high = sp - 1
	} else {
		s.low = sp
	}
	s.renorm(r)
	return bit
}

// renorm is the decode renormalization loop: symmetric to EncodeState's
// except it shifts bits into value from r instead of emitting them.
func (s *DecodeState) renorm(r *bitio.Reader) {
	for {
		switch {
		case s.high < Half:
			// Bit already determined; nothing to subtract before the
			// shared shift below.
		case s.low >= Half:
			s.value -= Half
			s.low -= Half
			s.high -= Half
		case s.low >= Quarter && s.high < ThreeQuarter:
			s.value -= Quarter
			s.low -= Quarter
			s.high -= Quarter
		default:
			return
		}
		s.low <<= 1
		s.high = (s.high << 1) | 1
		s.value = (s.value << 1) | uint32(r.ReadBit())
	}
}
