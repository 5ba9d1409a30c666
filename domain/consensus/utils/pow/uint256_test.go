package pow

import "testing"

func TestUint256RoundTrip(t *testing.T) {
	u := NewUint256([4]uint64{
		17940221284075783383, 5515539701051934179, 9306386394228168259, 13467475580129520626,
	})

	back := Uint256FromLEBytes(u.ToLEBytes())
	if !back.Equal(u) {
		t.Fatalf("from_le_bytes(to_le_bytes(x)) != x: got %#v want %#v", back, u)
	}

	var b [32]byte
	for i := range b {
		b[i] = byte(i * 7)
	}
	roundTripped := Uint256FromLEBytes(b).ToLEBytes()
	if roundTripped != b {
		t.Fatalf("to_le_bytes(from_le_bytes(b)) != b: got %x want %x", roundTripped, b)
	}
}

func TestUint256Ordering(t *testing.T) {
	zero := ZeroUint256
	one := NewUint256([4]uint64{1, 0, 0, 0})
	max := MaxUint256

	if !zero.Less(one) {
		t.Fatalf("expected 0 < 1")
	}
	if !one.LessOrEqual(max) {
		t.Fatalf("expected 1 <= max")
	}
	if !max.LessOrEqual(max) {
		t.Fatalf("max always meets itself as a target")
	}
	if max.Less(max) {
		t.Fatalf("max is not strictly less than itself")
	}

	highLimb := NewUint256([4]uint64{0xFFFFFFFFFFFFFFFF, 0, 0, 1})
	lowLimbOnly := NewUint256([4]uint64{0, 0, 0, 2})
	if !highLimb.Less(lowLimbOnly) {
		t.Fatalf("ordering must be dominated by the most significant limb")
	}
}

func TestUint256Equal(t *testing.T) {
	a := NewUint256([4]uint64{1, 2, 3, 4})
	b := NewUint256([4]uint64{1, 2, 3, 4})
	c := NewUint256([4]uint64{1, 2, 3, 5})

	if !a.Equal(b) {
		t.Fatalf("expected equal limbs to compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected differing limbs to compare unequal")
	}
}
