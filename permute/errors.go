package permute

import "errors"

// Sentinel errors surfaced to callers. Wrap these with fmt.Errorf's %w so
// callers can match with errors.Is.
var (
	// ErrNegativeRounds is returned when a factory is given rounds < 0.
	ErrNegativeRounds = errors.New("permute: rounds must be >= 0")

	// ErrInvalidRange is returned by a range factory when the window is
	// empty, non-increasing, or otherwise cannot encode a domain size.
	ErrInvalidRange = errors.New("permute: range is empty, non-increasing, or not representable")

	// ErrOutOfDomain is returned by the checked Encode/Decode entry
	// points when the argument is outside the permutation's domain.
	ErrOutOfDomain = errors.New("permute: value out of domain")

	// ErrIteratorExhausted is returned by Next after HasNext reports
	// false.
	ErrIteratorExhausted = errors.New("permute: iterator exhausted")

	// ErrSizeMismatch is returned by the collection helpers when the
	// permutation's size does not match the length of the list.
	ErrSizeMismatch = errors.New("permute: collection length does not match permutation size")
)
