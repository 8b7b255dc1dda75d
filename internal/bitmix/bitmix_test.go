package bitmix

import "testing"

func TestBlock(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		n          uint64
		wantKBits  uint
		wantMask   uint64
		wantRshift uint
	}{
		{"n=1 forces kBits=1", 1, 1, 1, 1},
		{"n=2 power of two", 2, 1, 1, 1},
		{"n=3", 3, 2, 3, 1},
		{"n=16", 16, 4, 15, 1},
		{"n=17 crosses to 5 bits", 17, 5, 31, 2},
		{"n=100", 100, 7, 127, 3},
		{"n=1<<20", 1 << 20, 20, (1 << 20) - 1, 8},
		{"n=1<<32", 1 << 32, 32, (uint64(1) << 32) - 1, 13},
		{"n=1<<63", 1 << 63, 63, (uint64(1) << 63) - 1, 27},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mask, kBits, rshift := Block(tc.n)
			if kBits != tc.wantKBits {
				t.Errorf("kBits = %d, want %d", kBits, tc.wantKBits)
			}
			if mask != tc.wantMask {
				t.Errorf("mask = %#x, want %#x", mask, tc.wantMask)
			}
			if rshift != tc.wantRshift {
				t.Errorf("rshift = %d, want %d", rshift, tc.wantRshift)
			}
		})
	}
}

func TestBlockFullWidth(t *testing.T) {
	t.Parallel()
	mask, kBits, _ := Block(1<<63 + 1)
	if kBits != 64 {
		t.Errorf("kBits = %d, want 64", kBits)
	}
	if mask != ^uint64(0) {
		t.Errorf("mask = %#x, want %#x", mask, ^uint64(0))
	}
}

func TestInvOddRoundTrip(t *testing.T) {
	t.Parallel()
	multipliers := []uint64{1, 3, 0x9E3779B1, 0x9E3779B97F4A7C15, 0xC2B2AE3D27D4EB4F}
	kBitsCases := []uint{1, 4, 8, 16, 32, 63, 64}

	for _, a := range multipliers {
		for _, kBits := range kBitsCases {
			mask, _, _ := Block(uint64(1) << kBits)
			if kBits == 64 {
				mask = ^uint64(0)
			}
			inv := InvOdd(a, mask)
			got := (a * inv) & mask
			if got != 1 {
				t.Errorf("InvOdd(%#x, mask=%#x) = %#x: a*inv&mask = %#x, want 1", a, mask, inv, got)
			}
		}
	}
}

func TestInvOddPanicsOnEven(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for even multiplier")
		}
	}()
	InvOdd(2, 0xFF)
}

func TestInvXorShiftRoundTrip(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		kBits uint
		s     uint
	}{
		{8, 1}, {8, 3}, {16, 5}, {32, 13}, {32, 17}, {64, 27}, {64, 30}, {64, 31},
	}
	for _, tc := range testCases {
		mask, _, _ := Block(uint64(1) << tc.kBits)
		if tc.kBits == 64 {
			mask = ^uint64(0)
		}
		for v := uint64(0); v < 2000; v += 37 {
			x := v & mask
			forward := x ^ (x >> tc.s)
			forward &= mask
			back := InvXorShift(forward, tc.s, tc.kBits, mask)
			if back != x {
				t.Errorf("InvXorShift round-trip failed: kBits=%d s=%d x=%#x forward=%#x back=%#x", tc.kBits, tc.s, x, forward, back)
			}
		}
	}
}
