package pow

import "encoding/binary"

// Uint256 is a fixed 256-bit unsigned integer stored as four 64-bit limbs in
// little-endian order: Limbs[0] is the least significant limb, Limbs[3] the
// most significant. Ordering is numeric.
type Uint256 struct {
	Limbs [4]uint64
}

// NewUint256 constructs a Uint256 from its four little-endian limbs.
func NewUint256(limbs [4]uint64) Uint256 {
	return Uint256{Limbs: limbs}
}

// ZeroUint256 is the additive identity.
var ZeroUint256 = Uint256{}

// MaxUint256 is the all-ones 256-bit value: the trivial "always meets
// target" case.
var MaxUint256 = Uint256{Limbs: [4]uint64{
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
}}

// ToLEBytes returns the 32-byte little-endian encoding: each limb's
// little-endian bytes concatenated in limb order.
func (u Uint256) ToLEBytes() [32]byte {
	var out [32]byte
	for i, limb := range u.Limbs {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], limb)
	}
	return out
}

// Uint256FromLEBytes is the inverse of ToLEBytes.
func Uint256FromLEBytes(b [32]byte) Uint256 {
	var u Uint256
	for i := range u.Limbs {
		u.Limbs[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return u
}

// Cmp returns -1, 0, or 1 as u is numerically less than, equal to, or
// greater than other. Comparison proceeds limb by limb from the most
// significant limb down, matching the numeric ordering defined over the
// little-endian limb representation.
func (u Uint256) Cmp(other Uint256) int {
	for i := 3; i >= 0; i-- {
		if u.Limbs[i] < other.Limbs[i] {
			return -1
		}
		if u.Limbs[i] > other.Limbs[i] {
			return 1
		}
	}
	return 0
}

// Equal reports whether u and other are bitwise identical.
func (u Uint256) Equal(other Uint256) bool {
	return u.Limbs == other.Limbs
}

// LessOrEqual reports whether u <= other.
func (u Uint256) LessOrEqual(other Uint256) bool {
	return u.Cmp(other) <= 0
}

// Less reports whether u < other.
func (u Uint256) Less(other Uint256) bool {
	return u.Cmp(other) < 0
}

// String renders u as lowercase hex, most significant limb first, for
// logging and debugging. It never participates in hash computation.
func (u Uint256) String() string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, 64)
	for i := 3; i >= 0; i-- {
		limb := u.Limbs[i]
		for shift := 60; shift >= 0; shift -= 4 {
			buf = append(buf, hexDigits[(limb>>uint(shift))&0xF])
		}
	}
	return string(buf)
}
