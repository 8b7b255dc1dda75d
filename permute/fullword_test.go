package permute

import (
	"encoding/binary"
	"testing"
)

func TestFullWordVariant32RoundTrip(t *testing.T) {
	t.Parallel()
	p, err := NewFromSeed32(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != -1 {
		t.Fatalf("Size() = %d, want -1", p.Size())
	}

	rng := NewRandSource(42)
	for i := 0; i < 10000; i++ {
		x := uint32(rng.Uint64())
		y, err := p.Encode(x)
		if err != nil {
			t.Fatalf("Encode(%d): %v", x, err)
		}
		back, err := p.Decode(y)
		if err != nil || back != x {
			t.Fatalf("Decode(Encode(%d)) = %d, %v, want %d, nil", x, back, err, x)
		}
	}
}

func TestFullWordVariant32DeterministicFirstValues(t *testing.T) {
	t.Parallel()
	p1, err := NewFromSeed32(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewFromSeed32(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	e0a, _ := p1.Encode(0)
	e0b, _ := p2.Encode(0)
	if e0a != e0b {
		t.Errorf("Encode(0) diverged between identically-seeded instances: %d vs %d", e0a, e0b)
	}
	e1a, _ := p1.Encode(1)
	e1b, _ := p2.Encode(1)
	if e1a != e1b {
		t.Errorf("Encode(1) diverged between identically-seeded instances: %d vs %d", e1a, e1b)
	}
}

func TestFullWordVariant64RoundTripOnUUIDHalves(t *testing.T) {
	t.Parallel()
	p, err := NewFromSeed64(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	// A UUIDv7-shaped 16-byte value split into its high and low halves.
	var uuid [16]byte
	for i := range uuid {
		uuid[i] = byte(i*7 + 3)
	}
	hi := binary.BigEndian.Uint64(uuid[:8])
	lo := binary.BigEndian.Uint64(uuid[8:])

	ehi, err := p.Encode(hi)
	if err != nil {
		t.Fatal(err)
	}
	elo, err := p.Encode(lo)
	if err != nil {
		t.Fatal(err)
	}

	dhi, err := p.Decode(ehi)
	if err != nil || dhi != hi {
		t.Fatalf("Decode(Encode(hi)) = %d, %v, want %d, nil", dhi, err, hi)
	}
	dlo, err := p.Decode(elo)
	if err != nil || dlo != lo {
		t.Fatalf("Decode(Encode(lo)) = %d, %v, want %d, nil", dlo, err, lo)
	}
}

func TestFullWordVariant32IteratorExhaustsAtMax(t *testing.T) {
	t.Parallel()
	p, err := NewFromSeed32(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	it := p.Iterator(^uint32(0) - 2)
	count := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			t.Fatal(err)
		}
		count++
		if count > 10 {
			t.Fatal("iterator did not stop at the maximum uint32 value")
		}
	}
	if count != 3 {
		t.Fatalf("iterator produced %d values starting 3 below max, want 3", count)
	}
	if _, err := it.Next(); err != ErrIteratorExhausted {
		t.Errorf("Next after exhaustion: err = %v, want ErrIteratorExhausted", err)
	}
}

func TestFullWordVariant64DefaultRounds(t *testing.T) {
	t.Parallel()
	p, err := NewFromSeed64(-1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	fw := p.(*fullWordVariant64)
	if fw.rounds != defaultFullWordRounds {
		t.Errorf("rounds = %d, want %d", fw.rounds, defaultFullWordRounds)
	}
}
