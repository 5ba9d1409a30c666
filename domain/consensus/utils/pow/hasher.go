package pow

import "lukechampine.com/blake3"

// powHasher assembles the 80-byte pre-image PRE_POW_HASH || TIME ||
// zeroes(32) || NONCE and reduces it to a 256-bit BLAKE3 digest. It holds
// ten 64-bit words: words 0..3 are the pre-PoW hash's limbs, word 4 is the
// timestamp, words 5..8 are zero padding, and word 9 is a placeholder for
// the nonce written in at finalize time. It is immutable after
// construction; finalizeWithNonce is functional and never mutates the
// receiver.
type powHasher struct {
	words [10]uint64
}

// newPowHasher builds the hasher for a given pre-PoW hash and timestamp.
// Separating construction from finalization means the per-nonce cost is
// exactly one BLAKE3 call over 80 bytes plus one 8-byte write.
func newPowHasher(prePowHash Uint256, timestamp uint64) powHasher {
	var h powHasher
	copy(h.words[0:4], prePowHash.Limbs[:])
	h.words[4] = timestamp
	return h
}

// finalizeWithNonce writes nonce into word 9 of a local copy, serializes the
// ten words as 80 little-endian bytes, and returns the BLAKE3 digest of that
// buffer as a Uint256.
func (h powHasher) finalizeWithNonce(nonce uint64) Uint256 {
	h.words[9] = nonce

	var input [80]byte
	for i, word := range h.words {
		putUint64LE(input[i*8:i*8+8], word)
	}

	digest := blake3.Sum256(input[:])
	return Uint256FromLEBytes(digest)
}

func putUint64LE(dst []byte, v uint64) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
	dst[4] = byte(v >> 32)
	dst[5] = byte(v >> 40)
	dst[6] = byte(v >> 48)
	dst[7] = byte(v >> 56)
}
