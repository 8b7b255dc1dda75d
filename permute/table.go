package permute

// tableVariant32 is the small-domain fast path: a materialized forward and
// inverse permutation built once by a Fisher-Yates shuffle, used whenever
// 0 <= size <= 16 (spec's "Table" row). Both Encode and Decode are a
// single slice index.
type tableVariant32 struct {
	size int32
	fwd  []uint32
	inv  []uint32
}

func newTableVariant32(n uint32, rng RandSource) *tableVariant32 {
	fwd := make([]uint32, n)
	for i := range fwd {
		fwd[i] = uint32(i)
	}
	for i := len(fwd) - 1; i > 0; i-- {
		j := int(rng.Uint64() % uint64(i+1))
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}
	inv := make([]uint32, n)
	for i, v := range fwd {
		inv[v] = uint32(i)
	}
	return &tableVariant32{size: int32(n), fwd: fwd, inv: inv}
}

func (t *tableVariant32) Size() int32 { return t.size }

func (t *tableVariant32) EncodeUnchecked(x uint32) uint32 { return t.fwd[x] }
func (t *tableVariant32) DecodeUnchecked(y uint32) uint32 { return t.inv[y] }

func (t *tableVariant32) Encode(x uint32) (uint32, error) {
	if int64(x) >= int64(t.size) {
		return 0, ErrOutOfDomain
	}
	return t.EncodeUnchecked(x), nil
}

func (t *tableVariant32) Decode(y uint32) (uint32, error) {
	if int64(y) >= int64(t.size) {
		return 0, ErrOutOfDomain
	}
	return t.DecodeUnchecked(y), nil
}

func (t *tableVariant32) Iterator(offset uint32) Iterator32 {
	return &tableIterator32{t: t, idx: offset}
}

type tableIterator32 struct {
	t   *tableVariant32
	idx uint32
}

func (it *tableIterator32) HasNext() bool {
	return int64(it.idx) < int64(it.t.size)
}

func (it *tableIterator32) Next() (uint32, error) {
	if !it.HasNext() {
		return 0, ErrIteratorExhausted
	}
	v := it.t.fwd[it.idx]
	it.idx++
	return v, nil
}

// tableVariant64 is the 64-bit-word mirror of tableVariant32.
type tableVariant64 struct {
	size int64
	fwd  []uint64
	inv  []uint64
}

func newTableVariant64(n uint64, rng RandSource) *tableVariant64 {
	fwd := make([]uint64, n)
	for i := range fwd {
		fwd[i] = uint64(i)
	}
	for i := len(fwd) - 1; i > 0; i-- {
		j := int(rng.Uint64() % uint64(i+1))
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}
	inv := make([]uint64, n)
	for i, v := range fwd {
		inv[v] = uint64(i)
	}
	return &tableVariant64{size: int64(n), fwd: fwd, inv: inv}
}

func (t *tableVariant64) Size() int64 { return t.size }

func (t *tableVariant64) EncodeUnchecked(x uint64) uint64 { return t.fwd[x] }
func (t *tableVariant64) DecodeUnchecked(y uint64) uint64 { return t.inv[y] }

func (t *tableVariant64) Encode(x uint64) (uint64, error) {
	if x >= uint64(t.size) {
		return 0, ErrOutOfDomain
	}
	return t.EncodeUnchecked(x), nil
}

func (t *tableVariant64) Decode(y uint64) (uint64, error) {
	if y >= uint64(t.size) {
		return 0, ErrOutOfDomain
	}
	return t.DecodeUnchecked(y), nil
}

func (t *tableVariant64) Iterator(offset uint64) Iterator64 {
	return &tableIterator64{t: t, idx: offset}
}

type tableIterator64 struct {
	t   *tableVariant64
	idx uint64
}

func (it *tableIterator64) HasNext() bool {
	return it.idx < uint64(it.t.size)
}

func (it *tableIterator64) Next() (uint64, error) {
	if !it.HasNext() {
		return 0, ErrIteratorExhausted
	}
	v := it.t.fwd[it.idx]
	it.idx++
	return v, nil
}
