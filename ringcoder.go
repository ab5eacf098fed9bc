// Package ringcoder implements a lossless binary compressor and
// decompressor based on adaptive binary arithmetic coding with a
// sliding-window ("ring buffer") context model.
//
// Encode and Decode operate at bit granularity rather than whole bytes:
// callers pass sequenceBitLength / decodedBitLength alongside a
// contextLength -- the number of trailing coded bits used to condition
// the probability model -- and must use the same contextLength on both
// sides, or recovered data is undefined. There is no embedded header:
// the wire format is
// nothing but the coder's emitted bits followed by zero padding to a
// byte boundary (internal/bitio).
//
// The probability model is pluggable (internal/prob.Oracle); this
// package wires in the reference Laplace-smoothing model.
//
// This package is a from-scratch implementation of an arithmetic coder,
// not an image codec -- it shares no wire format or API with JPEG 2000
// despite the resemblance of its internal layout (internal/bitio,
// internal/coder) to a JPEG 2000 codec's bit-I/O and entropy-coding
// packages.
package ringcoder

import (
	"github.com/glorious-coding/ringcoder/internal/coder"
	"github.com/glorious-coding/ringcoder/internal/prob"
)

// Precision is the coder's interval register width in bits.
const Precision = coder.Precision

// FixedScale is the probability denominator the reference oracle's
// estimates are expressed in.
const FixedScale = prob.FixedScale
