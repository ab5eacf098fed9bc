// Package ring implements the fixed-capacity circular bit buffer that
// backs the coder's sliding context: it remembers the last capacity
// coded bits and maintains a running count of 1-bits among them in
// O(1) per update.
//
// No other component here tracks bit history in quite this shape --
// the nearest cousin, an EBCOT context model keyed on per-coefficient
// neighbor significance flags, solves a different problem -- so Ring is
// new code, grounded only on the general discipline of pre-sized,
// reused buffers rather than per-symbol allocation seen throughout this
// codebase.
package ring

// Ring is a fixed-capacity circular bit buffer. The layout of which
// absolute position holds the oldest bit is not observable from the
// outside: callers only ever see CountOnes and Capacity, which is all
// the reference probability oracle needs.
type Ring struct {
	capacity  int
	bits      []byte // packed MSB-first, ceil(capacity/8) bytes
	head      int    // next write position, 0..capacity
	countOnes int
}

// New returns a Ring with the given bit capacity, all bits initially
// zero. A capacity of 0 is valid and makes Push a no-op.
func New(capacity int) *Ring {
	return &Ring{
		capacity: capacity,
		bits:     make([]byte, (capacity+7)/8),
	}
}

// Capacity returns the ring's bit capacity (context_length).
func (r *Ring) Capacity() int { return r.capacity }

// CountOnes returns the number of 1-bits currently held.
func (r *Ring) CountOnes() int { return r.countOnes }

// Push inserts bit at the ring's head, evicting the bit it overwrites
// and updating CountOnes by the signed delta between the new and old
// bit. Recomputing the count from scratch on every push would still be
// correct but turns every update into an O(n) scan over the ring.
func (r *Ring) Push(bit int) {
	if r.capacity == 0 {
		return
	}
	byteIdx := r.head / 8
	mask := byte(1) << uint(7-r.head%8)

	old := 0
	if r.bits[byteIdx]&mask != 0 {
		old = 1
	}
	newBit := bit & 1
	if newBit != 0 {
		r.bits[byteIdx] |= mask
	} else {
		r.bits[byteIdx] &^= mask
	}
	r.countOnes += newBit - old

	r.head++
	if r.head == r.capacity {
		r.head = 0
	}
}
