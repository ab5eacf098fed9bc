package ringcoder

import (
	"fmt"

	"github.com/glorious-coding/ringcoder/internal/bitio"
	"github.com/glorious-coding/ringcoder/internal/coder"
	"github.com/glorious-coding/ringcoder/internal/prob"
	"github.com/glorious-coding/ringcoder/internal/ring"
)

// Decode reverses Encode: given bytes produced with the same
// contextLength, it recovers decodedBitLength bits (MSB-first) into a
// byte buffer of ceil(decodedBitLength/8) bytes. Any trailing bits of
// the last byte beyond decodedBitLength are zero.
//
// No trailer is read and no error is raised on malformed input: the
// contract is "correct output iff encoded came from Encode with the
// same decodedBitLength/contextLength". Mismatched contextLength
// produces unspecified, not crashing, output.
func Decode(encoded []byte, decodedBitLength, contextLength int) ([]byte, error) {
	if decodedBitLength < 0 {
		return nil, &InvalidArgumentError{Reason: fmt.Sprintf("decoded_bit_length must be nonnegative, got %d", decodedBitLength)}
	}
	if err := validateContextLength(contextLength); err != nil {
		return nil, err
	}

	in := bitio.NewReader(encoded)
	out := bitio.NewWriter()
	ctx := ring.New(contextLength)
	state := coder.NewDecodeState(prob.Reference.P1, in)

	for i := 0; i < decodedBitLength; i++ {
		bit := state.DecodeBit(ctx.CountOnes(), ctx.Capacity(), in)
		out.Emit(bit)
		ctx.Push(bit)
	}
	out.Flush()

	return out.Bytes(), nil
}
