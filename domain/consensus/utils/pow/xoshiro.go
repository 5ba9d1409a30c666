package pow

import "math/bits"

// xoshiro256PlusPlus is a Xoshiro256++ pseudo-random generator seeded
// directly from a 256-bit hash's four limbs. It is used exclusively to
// generate the V1 matrix's entries; it is not a general-purpose PRNG and
// carries no cryptographic guarantees of its own.
type xoshiro256PlusPlus struct {
	s [4]uint64
}

// newXoshiro256PlusPlus seeds the generator directly from seed's limbs. The
// caller is responsible for ensuring seed is not all-zero; in practice seed
// is always a hash digest, which makes the all-zero state unreachable.
func newXoshiro256PlusPlus(seed Uint256) *xoshiro256PlusPlus {
	return &xoshiro256PlusPlus{s: seed.Limbs}
}

// u64 returns the next 64-bit output and advances the generator's state.
func (x *xoshiro256PlusPlus) u64() uint64 {
	result := bits.RotateLeft64(x.s[0]+x.s[3], 23) + x.s[0]

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t

	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}
