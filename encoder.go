package ringcoder

import (
	"fmt"

	"github.com/glorious-coding/ringcoder/internal/bitio"
	"github.com/glorious-coding/ringcoder/internal/coder"
	"github.com/glorious-coding/ringcoder/internal/prob"
	"github.com/glorious-coding/ringcoder/internal/ring"
)

// Encode compresses the first sequenceBitLength bits of sequence
// (MSB-first) into a byte buffer, conditioning the reference
// probability oracle on a sliding context of contextLength bits.
//
// sequenceBitLength may exceed 8*len(sequence); bits beyond the input
// buffer are read as zero (internal/bitio.Reader's past-end contract).
// The returned length is not predictable in advance and may exceed
// len(sequence) for incompressible data, due to the fixed-Precision
// termination overhead.
//
// Encode is a pure function of its inputs: two calls with identical
// arguments produce byte-identical output.
func Encode(sequence []byte, sequenceBitLength, contextLength int) ([]byte, error) {
	if sequenceBitLength < 0 {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("sequence_bit_length must be nonnegative, got %d", sequenceBitLength)}
	}
	if err := validateContextLength(contextLength); err != nil {
		return nil, err
	}

	in := bitio.NewReader(sequence)
	out := bitio.NewWriter()
	ctx := ring.New(contextLength)
	state := coder.NewEncodeState(prob.Reference.P1)

	for i := 0; i < sequenceBitLength; i++ {
		bit := in.ReadBit()
		state.EncodeBit(bit, ctx.CountOnes(), ctx.Capacity(), out)
		ctx.Push(bit)
	}
	state.Finish(out)

	return out.Bytes(), nil
}
