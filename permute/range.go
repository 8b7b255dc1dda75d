package permute

import "math"

// rangePermuter32 shifts a finite Permuter32 of size N onto an arbitrary
// contiguous window [a, b] with b-a+1 == N. It borrows (shares) the
// underlying permutation; it does not own or re-randomize it.
type rangePermuter32 struct {
	base Permuter32
	a, b int32
}

func rangeLength32(a, b int32) (int64, bool) {
	if b < a {
		return 0, false
	}
	return int64(b) - int64(a) + 1, true
}

// NewRange32 builds a permutation over the inclusive window [a, b],
// wrapping a size-based Permuter32 of size b-a+1 with the range adapter.
// It returns ErrInvalidRange if the window is empty, non-increasing, or
// its length does not fit a non-negative int32 domain size.
func NewRange32(a, b int32, rng RandSource, rounds int) (Permuter32, error) {
	length, ok := rangeLength32(a, b)
	if !ok || length > math.MaxInt32 {
		return nil, ErrInvalidRange
	}
	base, err := New32(int32(length), rng, rounds)
	if err != nil {
		return nil, err
	}
	return &rangePermuter32{base: base, a: a, b: b}, nil
}

// NewRangeFromSeed32 is NewRange32 with the RNG built from a 64-bit seed.
func NewRangeFromSeed32(a, b int32, seed int64, rounds int) (Permuter32, error) {
	return NewRange32(a, b, NewRandSource(seed), rounds)
}

func (r *rangePermuter32) Size() int32 { return r.base.Size() }

func (r *rangePermuter32) inDomain(v int64) bool {
	return v >= int64(r.a) && v <= int64(r.b)
}

func (r *rangePermuter32) EncodeUnchecked(v uint32) uint32 {
	shifted := uint32(int64(int32(v)) - int64(r.a))
	encoded := r.base.EncodeUnchecked(shifted)
	return uint32(int64(encoded) + int64(r.a))
}

func (r *rangePermuter32) DecodeUnchecked(v uint32) uint32 {
	shifted := uint32(int64(int32(v)) - int64(r.a))
	decoded := r.base.DecodeUnchecked(shifted)
	return uint32(int64(decoded) + int64(r.a))
}

func (r *rangePermuter32) Encode(v uint32) (uint32, error) {
	if !r.inDomain(int64(int32(v))) {
		return 0, ErrOutOfDomain
	}
	return r.EncodeUnchecked(v), nil
}

func (r *rangePermuter32) Decode(v uint32) (uint32, error) {
	if !r.inDomain(int64(int32(v))) {
		return 0, ErrOutOfDomain
	}
	return r.DecodeUnchecked(v), nil
}

func (r *rangePermuter32) Iterator(offset uint32) Iterator32 {
	return &rangeIterator32{r: r, base: r.base.Iterator(offset)}
}

type rangeIterator32 struct {
	r    *rangePermuter32
	base Iterator32
}

func (it *rangeIterator32) HasNext() bool { return it.base.HasNext() }

func (it *rangeIterator32) Next() (uint32, error) {
	v, err := it.base.Next()
	if err != nil {
		return 0, err
	}
	return uint32(int64(v) + int64(it.r.a)), nil
}

// rangePermuter64 is the 64-bit-word mirror of rangePermuter32.
type rangePermuter64 struct {
	base Permuter64
	a, b int64
}

func rangeLength64(a, b int64) (uint64, bool) {
	if b < a {
		return 0, false
	}
	diff := uint64(b) - uint64(a)
	if diff == ^uint64(0) {
		// length would be 2^64, which cannot be distinguished from the
		// FullWord sentinel's own off-by-one reservation of -1.
		return 0, false
	}
	return diff + 1, true
}

// NewRange64 is the 64-bit-word mirror of NewRange32.
func NewRange64(a, b int64, rng RandSource, rounds int) (Permuter64, error) {
	length, ok := rangeLength64(a, b)
	if !ok || length > uint64(math.MaxInt64) {
		return nil, ErrInvalidRange
	}
	base, err := New64(int64(length), rng, rounds)
	if err != nil {
		return nil, err
	}
	return &rangePermuter64{base: base, a: a, b: b}, nil
}

// NewRangeFromSeed64 is NewRange64 with the RNG built from a 64-bit seed.
func NewRangeFromSeed64(a, b int64, seed int64, rounds int) (Permuter64, error) {
	return NewRange64(a, b, NewRandSource(seed), rounds)
}

func (r *rangePermuter64) Size() int64 { return r.base.Size() }

func (r *rangePermuter64) inDomain(v int64) bool {
	return v >= r.a && v <= r.b
}

func (r *rangePermuter64) EncodeUnchecked(v uint64) uint64 {
	shifted := uint64(int64(v) - r.a)
	encoded := r.base.EncodeUnchecked(shifted)
	return uint64(int64(encoded) + r.a)
}

func (r *rangePermuter64) DecodeUnchecked(v uint64) uint64 {
	shifted := uint64(int64(v) - r.a)
	decoded := r.base.DecodeUnchecked(shifted)
	return uint64(int64(decoded) + r.a)
}

func (r *rangePermuter64) Encode(v uint64) (uint64, error) {
	if !r.inDomain(int64(v)) {
		return 0, ErrOutOfDomain
	}
	return r.EncodeUnchecked(v), nil
}

func (r *rangePermuter64) Decode(v uint64) (uint64, error) {
	if !r.inDomain(int64(v)) {
		return 0, ErrOutOfDomain
	}
	return r.DecodeUnchecked(v), nil
}

func (r *rangePermuter64) Iterator(offset uint64) Iterator64 {
	return &rangeIterator64{r: r, base: r.base.Iterator(offset)}
}

type rangeIterator64 struct {
	r    *rangePermuter64
	base Iterator64
}

func (it *rangeIterator64) HasNext() bool { return it.base.HasNext() }

func (it *rangeIterator64) Next() (uint64, error) {
	v, err := it.base.Next()
	if err != nil {
		return 0, err
	}
	return uint64(int64(v) + it.r.a), nil
}
