// Package keccakf implements the bare Keccak-f[1600] permutation.
//
// It deliberately does not implement a sponge construction: no padding, no
// domain separation, no rate/capacity split. Callers that need a sponge
// (absorb/squeeze over arbitrary-length input) should build it on top of
// Permute; the pow package's heavyHash instead drives this permutation directly
// against a frozen, pre-absorbed initial state, so a general-purpose sponge
// would only get in the way.
package keccakf

const rounds = 24

var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

var rotationConstants = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// Permute applies the 24-round Keccak-f[1600] permutation to state in place.
func Permute(state *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := range bc {
			bc[i] = state[i] ^ state[5+i] ^ state[10+i] ^ state[15+i] ^ state[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < len(state); j += 5 {
				state[i+j] ^= t
			}
		}

		// rho and pi
		temp := state[1]
		for i := range piLane {
			j := piLane[i]
			temp2 := state[j]
			state[j] = rotl64(temp, rotationConstants[i])
			temp = temp2
		}

		// chi
		for j := 0; j < len(state); j += 5 {
			for i := range bc {
				bc[i] = state[j+i]
			}
			for i := range bc {
				state[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		state[0] ^= roundConstants[r]
	}
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}
