package permute

import "github.com/Eignex/kpermute/internal/bitmix"

// boundedMultiplier32 and boundedMultiplier64 are fixed odd multipliers for
// the bounded variants' round function. Both derive from the golden ratio:
// the 32-bit one is xxHash's first 32-bit prime, the 64-bit one is the
// 64-bit golden-ratio constant (odd, but not prime). They are chosen only
// for their oddness and good avalanche under multiply-xorshift; they carry
// no cryptographic weight.
const (
	boundedMultiplier32 uint32 = 0x9E3779B1
	boundedMultiplier64 uint64 = 0x9E3779B97F4A7C15
)

// boundedVariant32 implements spec's bounded single-multiplier variant for
// both the BoundedHalf (17 <= N < 2^31, any positive size above the Table
// range) and BoundedFull (2^31 <= N < 2^32, reached through the
// negative-sentinel size encoding) rows: the two rows
// differ only in which default round count the factory picks, not in the
// round function or cycle-walking loop.
type boundedVariant32 struct {
	signedSize int32
	n          uint32 // true (unsigned) domain cardinality
	kBits      uint
	mask       uint32
	rshift     uint
	rounds     int
	keys       []uint32
	c          uint32
	cInv       uint32
}

func newBoundedVariant32(n uint32, signedSize int32, rng RandSource, rounds int) *boundedVariant32 {
	mask64, kBits, rshift := bitmix.Block(uint64(n))
	keys := make([]uint32, rounds)
	for i := range keys {
		keys[i] = uint32(rng.Uint64())
	}
	c := boundedMultiplier32
	cInv := uint32(bitmix.InvOdd(uint64(c), mask64))
	return &boundedVariant32{
		signedSize: signedSize,
		n:          n,
		kBits:      kBits,
		mask:       uint32(mask64),
		rshift:     rshift,
		rounds:     rounds,
		keys:       keys,
		c:          c,
		cInv:       cInv,
	}
}

func (b *boundedVariant32) Size() int32 { return b.signedSize }

// Rounds reports the number of mixing rounds in use.
func (b *boundedVariant32) Rounds() int { return b.rounds }

// KBits reports the width in bits of the power-of-two block this
// permutation cycle-walks over.
func (b *boundedVariant32) KBits() uint { return b.kBits }

func (b *boundedVariant32) forwardRound(x uint32, r int) uint32 {
	x = (x*b.c + b.keys[r]) & b.mask
	x ^= x >> b.rshift
	return x
}

func (b *boundedVariant32) inverseRound(x uint32, r int) uint32 {
	x = uint32(bitmix.InvXorShift(uint64(x), b.rshift, b.kBits, uint64(b.mask)))
	x = ((x - b.keys[r]) & b.mask) * b.cInv & b.mask
	return x
}

func (b *boundedVariant32) EncodeUnchecked(x uint32) uint32 {
	v := x & b.mask
	for {
		cur := v
		for r := 0; r < b.rounds; r++ {
			cur = b.forwardRound(cur, r)
		}
		if cur < b.n {
			return cur
		}
		v = cur
	}
}

func (b *boundedVariant32) DecodeUnchecked(y uint32) uint32 {
	v := y & b.mask
	for {
		cur := v
		for r := b.rounds - 1; r >= 0; r-- {
			cur = b.inverseRound(cur, r)
		}
		if cur < b.n {
			return cur
		}
		v = cur
	}
}

func (b *boundedVariant32) Encode(x uint32) (uint32, error) {
	if x >= b.n {
		return 0, ErrOutOfDomain
	}
	return b.EncodeUnchecked(x), nil
}

func (b *boundedVariant32) Decode(y uint32) (uint32, error) {
	if y >= b.n {
		return 0, ErrOutOfDomain
	}
	return b.DecodeUnchecked(y), nil
}

func (b *boundedVariant32) Iterator(offset uint32) Iterator32 {
	return &boundedIterator32{b: b, idx: offset}
}

type boundedIterator32 struct {
	b   *boundedVariant32
	idx uint32
}

func (it *boundedIterator32) HasNext() bool { return it.idx < it.b.n }

func (it *boundedIterator32) Next() (uint32, error) {
	if !it.HasNext() {
		return 0, ErrIteratorExhausted
	}
	v := it.b.EncodeUnchecked(it.idx)
	it.idx++
	return v, nil
}

// boundedVariant64 is the natural 64-bit analogue of boundedVariant32: the
// source referenced it in tests as HalfLongPermutation but did not ship an
// implementation (spec's open question); it shares the exact round
// function shape, widened to a uint64 mask and multiplier.
type boundedVariant64 struct {
	signedSize int64
	n          uint64
	kBits      uint
	mask       uint64
	rshift     uint
	rounds     int
	keys       []uint64
	c          uint64
	cInv       uint64
}

func newBoundedVariant64(n uint64, signedSize int64, rng RandSource, rounds int) *boundedVariant64 {
	mask, kBits, rshift := bitmix.Block(n)
	keys := make([]uint64, rounds)
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	c := boundedMultiplier64
	cInv := bitmix.InvOdd(c, mask)
	return &boundedVariant64{
		signedSize: signedSize,
		n:          n,
		kBits:      kBits,
		mask:       mask,
		rshift:     rshift,
		rounds:     rounds,
		keys:       keys,
		c:          c,
		cInv:       cInv,
	}
}

func (b *boundedVariant64) Size() int64 { return b.signedSize }
func (b *boundedVariant64) Rounds() int { return b.rounds }
func (b *boundedVariant64) KBits() uint { return b.kBits }

func (b *boundedVariant64) forwardRound(x uint64, r int) uint64 {
	x = (x*b.c + b.keys[r]) & b.mask
	x ^= x >> b.rshift
	return x
}

func (b *boundedVariant64) inverseRound(x uint64, r int) uint64 {
	x = bitmix.InvXorShift(x, b.rshift, b.kBits, b.mask)
	x = ((x - b.keys[r]) & b.mask) * b.cInv & b.mask
	return x
}

func (b *boundedVariant64) EncodeUnchecked(x uint64) uint64 {
	v := x & b.mask
	for {
		cur := v
		for r := 0; r < b.rounds; r++ {
			cur = b.forwardRound(cur, r)
		}
		if cur < b.n {
			return cur
		}
		v = cur
	}
}

func (b *boundedVariant64) DecodeUnchecked(y uint64) uint64 {
	v := y & b.mask
	for {
		cur := v
		for r := b.rounds - 1; r >= 0; r-- {
			cur = b.inverseRound(cur, r)
		}
		if cur < b.n {
			return cur
		}
		v = cur
	}
}

func (b *boundedVariant64) Encode(x uint64) (uint64, error) {
	if x >= b.n {
		return 0, ErrOutOfDomain
	}
	return b.EncodeUnchecked(x), nil
}

func (b *boundedVariant64) Decode(y uint64) (uint64, error) {
	if y >= b.n {
		return 0, ErrOutOfDomain
	}
	return b.DecodeUnchecked(y), nil
}

func (b *boundedVariant64) Iterator(offset uint64) Iterator64 {
	return &boundedIterator64{b: b, idx: offset}
}

type boundedIterator64 struct {
	b   *boundedVariant64
	idx uint64
}

func (it *boundedIterator64) HasNext() bool { return it.idx < it.b.n }

func (it *boundedIterator64) Next() (uint64, error) {
	if !it.HasNext() {
		return 0, ErrIteratorExhausted
	}
	v := it.b.EncodeUnchecked(it.idx)
	it.idx++
	return v, nil
}
