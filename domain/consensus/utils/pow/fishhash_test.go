package pow

import "testing"

func TestFishHashKernelDeterministic(t *testing.T) {
	ctx1 := NewFishHashContext(true)
	ctx2 := NewFishHashContext(true)

	var seed [64]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	a := fishhashKernel(ctx1, seed)
	b := fishhashKernel(ctx2, seed)

	if a != b {
		t.Fatalf("fishhashKernel must be deterministic for fixed (context contents, seed)")
	}
}

func TestFishHashAdapterDeterministic(t *testing.T) {
	ctx := NewFishHashContext(true)
	h := NewUint256([4]uint64{1, 2, 3, 4})

	a := fishHash(ctx, h)
	b := fishHash(NewFishHashContext(true), h)

	if !a.Equal(b) {
		t.Fatalf("fishHash must be deterministic for a freshly built context and fixed input")
	}
}

func TestFishHashLightAndFullModesBothRun(t *testing.T) {
	light := NewFishHashContext(true)
	full := NewFishHashContext(false)

	h := NewUint256([4]uint64{5, 6, 7, 8})

	lightOut := fishHash(light, h)
	fullOut := fishHash(full, h)

	if lightOut.Equal(ZeroUint256) || fullOut.Equal(ZeroUint256) {
		t.Fatalf("fishHash output should not be the zero value for a non-trivial seed")
	}
	// Light and full cache modes are not required to agree: spec.md leaves
	// the DAG/lookup primitive opaque, so this only checks both paths
	// execute and produce a result, not bit-for-bit agreement.
}

func TestFishHashInputSensitivity(t *testing.T) {
	ctx := NewFishHashContext(true)

	a := fishHash(ctx, NewUint256([4]uint64{1, 0, 0, 0}))
	b := fishHash(ctx, NewUint256([4]uint64{2, 0, 0, 0}))

	if a.Equal(b) {
		t.Fatalf("distinct inputs must not collide trivially")
	}
}
