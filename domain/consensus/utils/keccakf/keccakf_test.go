package keccakf

import "testing"

// wantZeroStatePermuted holds the first four lanes of Keccak-f[1600] applied
// to the all-zero state, a well-known constant independent of this package.
// Any conforming implementation must reproduce it bit-exact.
var wantZeroStatePermuted = [4]uint64{
	0xf1258f7940e1dde7,
	0x84d5ccf933c0478a,
	0xd598261ea65aa9ee,
	0xbd1547306f80494d,
}

// TestPermuteAllZero pins the permutation's behavior on the all-zero state
// against the independently known constant above, not against another call
// to Permute.
func TestPermuteAllZero(t *testing.T) {
	var state [25]uint64
	Permute(&state)

	var got [4]uint64
	copy(got[:], state[:4])
	if got != wantZeroStatePermuted {
		t.Fatalf("Permute(zero) = %#v, want %#v", got, wantZeroStatePermuted)
	}
}

// TestPermuteDeterministic checks that the same input always produces the
// same output.
func TestPermuteDeterministic(t *testing.T) {
	var a, b [25]uint64
	for i := range a {
		a[i] = uint64(i) * 0x9E3779B97F4A7C15
		b[i] = a[i]
	}

	Permute(&a)
	Permute(&b)

	if a != b {
		t.Fatalf("Permute is not deterministic: %#v != %#v", a, b)
	}
}

// TestPermuteMixesState is a light sanity check that the permutation
// actually moves bits around instead of leaving the state unchanged or
// collapsing to a fixed point.
func TestPermuteMixesState(t *testing.T) {
	var state [25]uint64
	state[0] = 1

	before := state
	Permute(&state)

	if state == before {
		t.Fatalf("Permute left the state unchanged")
	}
}
