package permute

import "math/rand"

// RandSource is the seed-to-RNG collaborator a permutation draws its round
// keys from at construction time. It is consumed synchronously, exactly
// once, and never retained past the constructor call.
//
// *math/rand.Rand satisfies this directly. permute makes no claim of
// cryptographic security; callers wanting that property are out of scope
// (see the package doc).
type RandSource interface {
	Uint64() uint64
}

// NewRandSource returns a RandSource deterministically seeded from seed.
// Two calls with the same seed produce the same stream of round keys, and
// therefore the same permutation.
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Permuter32 is a keyed bijection over a 32-bit domain. size follows the
// sentinel encoding documented on the New32 family: non-negative values
// are a literal domain [0, size), -1 is the full uint32 word, and values
// below -1 are the unsigned reinterpretation of a domain that doesn't fit
// the non-negative range.
type Permuter32 interface {
	// Size reports the domain size using the sentinel encoding.
	Size() int32

	// Encode maps x to its permuted value. It returns ErrOutOfDomain if x
	// is not a member of the domain.
	Encode(x uint32) (uint32, error)

	// Decode is the inverse of Encode.
	Decode(y uint32) (uint32, error)

	// EncodeUnchecked is Encode without the domain check. The caller must
	// ensure x is in the domain; behavior is undefined otherwise.
	EncodeUnchecked(x uint32) uint32

	// DecodeUnchecked is Decode without the domain check.
	DecodeUnchecked(y uint32) uint32

	// Iterator returns a fresh, non-restartable iterator over
	// Encode(offset), Encode(offset+1), ..., Encode(N-1).
	Iterator(offset uint32) Iterator32
}

// Permuter64 is the 64-bit-word mirror of Permuter32.
type Permuter64 interface {
	Size() int64
	Encode(x uint64) (uint64, error)
	Decode(y uint64) (uint64, error)
	EncodeUnchecked(x uint64) uint64
	DecodeUnchecked(y uint64) uint64
	Iterator(offset uint64) Iterator64
}

// Iterator32 is a finite, stateful, non-restartable lazy sequence of
// permuted values. It is not safe to share a single Iterator32 across
// goroutines; call Permuter32.Iterator again to get an independent one.
type Iterator32 interface {
	// HasNext reports whether Next has another value to produce.
	HasNext() bool

	// Next returns the next value in the sequence, or ErrIteratorExhausted
	// once HasNext is false.
	Next() (uint32, error)
}

// Iterator64 is the 64-bit-word mirror of Iterator32.
type Iterator64 interface {
	HasNext() bool
	Next() (uint64, error)
}
