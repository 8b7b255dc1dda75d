package permute

// Permuted32 returns a new slice L' with L'[i] = list[Decode(i)], using
// perm as an index permutation over list. perm.Size() must be
// non-negative and equal to len(list); ErrSizeMismatch is returned
// otherwise.
func Permuted32[T any](list []T, perm Permuter32) ([]T, error) {
	n := perm.Size()
	if n < 0 || int(n) != len(list) {
		return nil, ErrSizeMismatch
	}
	out := make([]T, len(list))
	for i := range out {
		src := perm.DecodeUnchecked(uint32(i))
		out[i] = list[src]
	}
	return out, nil
}

// Unpermuted32 inverts Permuted32: L'[i] = list[Encode(i)].
func Unpermuted32[T any](list []T, perm Permuter32) ([]T, error) {
	n := perm.Size()
	if n < 0 || int(n) != len(list) {
		return nil, ErrSizeMismatch
	}
	out := make([]T, len(list))
	for i := range out {
		src := perm.EncodeUnchecked(uint32(i))
		out[i] = list[src]
	}
	return out, nil
}

// Permuted64 is the 64-bit-word mirror of Permuted32.
func Permuted64[T any](list []T, perm Permuter64) ([]T, error) {
	n := perm.Size()
	if n < 0 || int64(len(list)) != n {
		return nil, ErrSizeMismatch
	}
	out := make([]T, len(list))
	for i := range out {
		src := perm.DecodeUnchecked(uint64(i))
		out[i] = list[src]
	}
	return out, nil
}

// Unpermuted64 is the 64-bit-word mirror of Unpermuted32.
func Unpermuted64[T any](list []T, perm Permuter64) ([]T, error) {
	n := perm.Size()
	if n < 0 || int64(len(list)) != n {
		return nil, ErrSizeMismatch
	}
	out := make([]T, len(list))
	for i := range out {
		src := perm.EncodeUnchecked(uint64(i))
		out[i] = list[src]
	}
	return out, nil
}
