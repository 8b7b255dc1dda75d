package permute

// New32 constructs a Permuter32 for the given size, drawing round keys
// from rng. size follows the sentinel encoding:
//
//   - size >= 0 is a literal domain [0, size).
//   - size == -1 selects the full uint32 word domain.
//   - size < -1 selects a finite domain whose true cardinality is the
//     unsigned reinterpretation of size.
//
// rounds == 0 picks the default for the chosen variant's size band.
// rounds < 0 returns ErrNegativeRounds.
func New32(size int32, rng RandSource, rounds int) (Permuter32, error) {
	if rounds < 0 {
		return nil, ErrNegativeRounds
	}

	switch {
	case size == -1:
		return newFullWordVariant32(rng, pickRounds(rounds, defaultFullWordRounds)), nil

	case size < -1:
		n := uint32(size)
		return newBoundedVariant32(n, size, rng, pickRounds(rounds, defaultBoundedRounds(uint64(n), true))), nil

	case size <= 16:
		return newTableVariant32(uint32(size), rng), nil

	default:
		n := uint32(size)
		return newBoundedVariant32(n, size, rng, pickRounds(rounds, defaultBoundedRounds(uint64(n), false))), nil
	}
}

// New64 is the 64-bit-word mirror of New32.
func New64(size int64, rng RandSource, rounds int) (Permuter64, error) {
	if rounds < 0 {
		return nil, ErrNegativeRounds
	}

	switch {
	case size == -1:
		return newFullWordVariant64(rng, pickRounds(rounds, defaultFullWordRounds)), nil

	case size < -1:
		n := uint64(size)
		return newBoundedVariant64(n, size, rng, pickRounds(rounds, defaultBoundedRounds(n, true))), nil

	case size <= 16:
		return newTableVariant64(uint64(size), rng), nil

	default:
		n := uint64(size)
		return newBoundedVariant64(n, size, rng, pickRounds(rounds, defaultBoundedRounds(n, false))), nil
	}
}

// NewFromSeed32 is New32 with the RNG built from a 64-bit seed: two calls
// with identical (size, seed, rounds) produce identical permutations.
func NewFromSeed32(size int32, seed int64, rounds int) (Permuter32, error) {
	return New32(size, NewRandSource(seed), rounds)
}

// NewFromSeed64 is New64 with the RNG built from a 64-bit seed.
func NewFromSeed64(size int64, seed int64, rounds int) (Permuter64, error) {
	return New64(size, NewRandSource(seed), rounds)
}

func pickRounds(requested, def int) int {
	if requested == 0 {
		return def
	}
	return requested
}

const defaultFullWordRounds = 2

// defaultBoundedRounds picks the default round count for a bounded
// variant's size band (spec's per-band defaults). reinterpreted
// distinguishes the negative-sentinel "BoundedFull" dispatch path from
// the plain positive-size "BoundedHalf" path; both share the round
// function, they differ only in this table.
func defaultBoundedRounds(n uint64, reinterpreted bool) int {
	if reinterpreted {
		switch {
		case n <= 1<<16:
			return 3
		case n <= 1<<24:
			return 4
		default:
			return 5
		}
	}
	switch {
	case n <= 1<<10:
		return 3
	case n <= 1<<20:
		return 4
	default:
		return 6
	}
}
