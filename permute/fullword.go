package permute

import "github.com/Eignex/kpermute/internal/bitmix"

// Fixed odd multipliers for the FullWord variant, drawn from xxHash's
// published primes (spec requires xxHash-style primes; no cryptographic
// property is claimed or needed).
const (
	fullWordMultiplier32a uint32 = 0x85EBCA77 // xxh32 prime 2
	fullWordMultiplier32b uint32 = 0xC2B2AE3D // xxh32 prime 3

	fullWordMultiplier64a uint64 = 0xC2B2AE3D27D4EB4F // xxh64 prime 2
	fullWordMultiplier64b uint64 = 0x165667B19E3779F9 // xxh64 prime 3
)

// Fixed, invertible xor-shift amounts for each word width. The 64-bit
// amounts are specified exactly; the 32-bit amounts are the classic
// xorshift32 constants, reused here only because they are fixed and
// invertible, as the spec permits.
const (
	fullWordShift32a uint = 13
	fullWordShift32b uint = 17
	fullWordShift32c uint = 5

	fullWordShift64a uint = 30
	fullWordShift64b uint = 27
	fullWordShift64c uint = 31
)

// fullWordVariant32 implements the FullWord variant over the entire
// uint32 domain: no cycle-walking is needed since every bit pattern is a
// valid output.
type fullWordVariant32 struct {
	rounds int
	k1, k2 []uint32
	c1, c2 uint32
	c1Inv  uint32
	c2Inv  uint32
}

func newFullWordVariant32(rng RandSource, rounds int) *fullWordVariant32 {
	k1 := make([]uint32, rounds)
	k2 := make([]uint32, rounds)
	for i := 0; i < rounds; i++ {
		k1[i] = uint32(rng.Uint64())
		k2[i] = uint32(rng.Uint64())
	}
	const allOnes32 = 0xFFFFFFFF
	return &fullWordVariant32{
		rounds: rounds,
		k1:     k1,
		k2:     k2,
		c1:     fullWordMultiplier32a,
		c2:     fullWordMultiplier32b,
		c1Inv:  uint32(bitmix.InvOdd(uint64(fullWordMultiplier32a), allOnes32)),
		c2Inv:  uint32(bitmix.InvOdd(uint64(fullWordMultiplier32b), allOnes32)),
	}
}

func (f *fullWordVariant32) Size() int32 { return -1 }

func (f *fullWordVariant32) EncodeUnchecked(x uint32) uint32 {
	for r := 0; r < f.rounds; r++ {
		x ^= f.k1[r]
		x ^= x >> fullWordShift32a
		x *= f.c1
		x ^= x >> fullWordShift32b
		x *= f.c2
		x ^= x >> fullWordShift32c
		x ^= f.k2[r]
	}
	return x
}

func (f *fullWordVariant32) DecodeUnchecked(y uint32) uint32 {
	const mask = 0xFFFFFFFF
	for r := f.rounds - 1; r >= 0; r-- {
		y ^= f.k2[r]
		y = uint32(bitmix.InvXorShift(uint64(y), fullWordShift32c, 32, mask))
		y *= f.c2Inv
		y = uint32(bitmix.InvXorShift(uint64(y), fullWordShift32b, 32, mask))
		y *= f.c1Inv
		y = uint32(bitmix.InvXorShift(uint64(y), fullWordShift32a, 32, mask))
		y ^= f.k1[r]
	}
	return y
}

func (f *fullWordVariant32) Encode(x uint32) (uint32, error) { return f.EncodeUnchecked(x), nil }
func (f *fullWordVariant32) Decode(y uint32) (uint32, error) { return f.DecodeUnchecked(y), nil }

func (f *fullWordVariant32) Iterator(offset uint32) Iterator32 {
	return &fullWordIterator32{f: f, idx: offset}
}

// fullWordIterator32 walks offset, offset+1, ..., up to and including the
// all-ones uint32 (spec's "sentinel boundary -1" reached as an unsigned
// value), then stops rather than wrapping back to 0.
type fullWordIterator32 struct {
	f         *fullWordVariant32
	idx       uint32
	exhausted bool
}

func (it *fullWordIterator32) HasNext() bool { return !it.exhausted }

func (it *fullWordIterator32) Next() (uint32, error) {
	if it.exhausted {
		return 0, ErrIteratorExhausted
	}
	v := it.f.EncodeUnchecked(it.idx)
	if it.idx == ^uint32(0) {
		it.exhausted = true
	} else {
		it.idx++
	}
	return v, nil
}

// fullWordVariant64 is the 64-bit-word mirror of fullWordVariant32.
type fullWordVariant64 struct {
	rounds int
	k1, k2 []uint64
	c1, c2 uint64
	c1Inv  uint64
	c2Inv  uint64
}

func newFullWordVariant64(rng RandSource, rounds int) *fullWordVariant64 {
	k1 := make([]uint64, rounds)
	k2 := make([]uint64, rounds)
	for i := 0; i < rounds; i++ {
		k1[i] = rng.Uint64()
		k2[i] = rng.Uint64()
	}
	const allOnes64 = ^uint64(0)
	return &fullWordVariant64{
		rounds: rounds,
		k1:     k1,
		k2:     k2,
		c1:     fullWordMultiplier64a,
		c2:     fullWordMultiplier64b,
		c1Inv:  bitmix.InvOdd(fullWordMultiplier64a, allOnes64),
		c2Inv:  bitmix.InvOdd(fullWordMultiplier64b, allOnes64),
	}
}

func (f *fullWordVariant64) Size() int64 { return -1 }

func (f *fullWordVariant64) EncodeUnchecked(x uint64) uint64 {
	for r := 0; r < f.rounds; r++ {
		x ^= f.k1[r]
		x ^= x >> fullWordShift64a
		x *= f.c1
		x ^= x >> fullWordShift64b
		x *= f.c2
		x ^= x >> fullWordShift64c
		x ^= f.k2[r]
	}
	return x
}

func (f *fullWordVariant64) DecodeUnchecked(y uint64) uint64 {
	const mask = ^uint64(0)
	for r := f.rounds - 1; r >= 0; r-- {
		y ^= f.k2[r]
		y = bitmix.InvXorShift(y, fullWordShift64c, 64, mask)
		y *= f.c2Inv
		y = bitmix.InvXorShift(y, fullWordShift64b, 64, mask)
		y *= f.c1Inv
		y = bitmix.InvXorShift(y, fullWordShift64a, 64, mask)
		y ^= f.k1[r]
	}
	return y
}

func (f *fullWordVariant64) Encode(x uint64) (uint64, error) { return f.EncodeUnchecked(x), nil }
func (f *fullWordVariant64) Decode(y uint64) (uint64, error) { return f.DecodeUnchecked(y), nil }

func (f *fullWordVariant64) Iterator(offset uint64) Iterator64 {
	return &fullWordIterator64{f: f, idx: offset}
}

// fullWordIterator64 is the 64-bit-word mirror of fullWordIterator32.
type fullWordIterator64 struct {
	f         *fullWordVariant64
	idx       uint64
	exhausted bool
}

func (it *fullWordIterator64) HasNext() bool { return !it.exhausted }

func (it *fullWordIterator64) Next() (uint64, error) {
	if it.exhausted {
		return 0, ErrIteratorExhausted
	}
	v := it.f.EncodeUnchecked(it.idx)
	if it.idx == ^uint64(0) {
		it.exhausted = true
	} else {
		it.idx++
	}
	return v, nil
}
