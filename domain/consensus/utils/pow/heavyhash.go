package pow

import "github.com/karlsen-network/karlsend/domain/consensus/utils/keccakf"

// heavyHasherInitialState is the absorption state of cSHAKE256 with an empty
// function name and the customization string "ProofOfWorkHash", after
// absorbing the padding bytes that precede a 32-byte input block. Word 4
// already incorporates the 0x04 domain/padding byte and word 16 the
// 0x8000000000000000 final-padding bit, so that XOR-absorbing a 32-byte
// input into words 0..3 followed by a single Keccak-f[1600] permutation
// completes the sponge for a 256-bit input/output.
//
// These constants are part of the public hash contract: they must be
// embedded exactly as given, never recomputed by running cSHAKE
// initialization per call.
var heavyHasherInitialState = [25]uint64{
	4239941492252378377, 8746723911537738262, 8796936657246353646,
	1272090201925444760, 16654558671554924250, 8270816933120786537,
	13907396207649043898, 6782861118970774626, 9239690602118867528,
	11582319943599406348, 17596056728278508070, 15212962468105129023,
	7812475424661425213, 3370482334374859748, 5690099369266491460,
	8596393687355028144, 570094237299545110, 9119540418498120711,
	16901969272480492857, 13372017233735502424, 14372891883993151831,
	5171152063242093102, 10573107899694386186, 6096431547456407061,
	1592359455985097269,
}

// heavyHash is Keccak-f[1600] with the hard-coded initial state above. It
// copies the initial state, XORs in's four limbs into words 0..3, applies
// one permutation, and returns the first four words as a Uint256.
func heavyHash(in Uint256) Uint256 {
	state := heavyHasherInitialState
	for i, limb := range in.Limbs {
		state[i] ^= limb
	}

	keccakf.Permute(&state)

	return NewUint256([4]uint64{state[0], state[1], state[2], state[3]})
}
