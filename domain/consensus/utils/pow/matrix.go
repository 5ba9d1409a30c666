package pow

import (
	"github.com/pkg/errors"
)

// matrixRankEps is the tolerance used by the floating-point Gaussian
// elimination rank check. Using exact integer arithmetic here would change
// which matrices are rejected and thus which subsequent hashes are
// computed, so this value (and the float64 arithmetic around it) is part of
// the hash contract, not an implementation detail.
const matrixRankEps = 1e-9

// maxMatrixGenerationAttempts bounds the rejection-sampling loop in
// generateMatrix purely as defensive hardening. Termination is probabilistic:
// full-rank probability is overwhelming for 64x64 nibble matrices drawn
// from a strong PRNG, so this bound is not expected to trigger for any real
// seed; its only purpose is to convert an unreachable infinite loop into a
// surfaced internal error instead of a hang.
const maxMatrixGenerationAttempts = 1000

// matrix is a 64x64 array of 4-bit values (nibbles, stored as uint16 with
// values 0..15), generated once per seed and immutable thereafter. It has
// real rank exactly 64.
type matrix struct {
	rows [64][64]uint16
}

// generateMatrix seeds a Xoshiro256++ generator from hash and repeatedly
// draws candidate matrices until one has real rank 64, per spec: rank is
// judged via Gaussian elimination over float64 with matrixRankEps as the
// pivot threshold.
func generateMatrix(hash Uint256) (*matrix, error) {
	gen := newXoshiro256PlusPlus(hash)

	rejected := 0
	for attempt := 0; attempt < maxMatrixGenerationAttempts; attempt++ {
		m := randMatrixNoRankCheck(gen)
		if m.computeRank() == 64 {
			if rejected > 0 {
				log.Debugf("matrix accepted after %d rejected candidate(s)", rejected)
			}
			return m, nil
		}
		rejected++
	}

	return nil, errors.Errorf("failed to generate a rank-64 matrix after %d attempts", maxMatrixGenerationAttempts)
}

// randMatrixNoRankCheck fills the matrix row by row: every 16 columns it
// draws one fresh uint64 from generator and unpacks four bits per column
// from it.
func randMatrixNoRankCheck(generator *xoshiro256PlusPlus) *matrix {
	var m matrix
	for i := 0; i < 64; i++ {
		var v uint64
		for j := 0; j < 64; j++ {
			shift := j % 16
			if shift == 0 {
				v = generator.u64()
			}
			m.rows[i][j] = uint16((v >> (4 * uint(shift))) & 0x0F)
		}
	}
	return &m
}

// computeRank computes the real-valued rank of the matrix via Gaussian
// elimination with pivots judged by |x| > matrixRankEps, operating on a
// float64 copy so the integer matrix itself is never mutated.
func (m *matrix) computeRank() int {
	var f [64][64]float64
	for i := range m.rows {
		for j := range m.rows[i] {
			f[i][j] = float64(m.rows[i][j])
		}
	}

	rank := 0
	var rowSelected [64]bool
	for i := 0; i < 64; i++ {
		j := 0
		for j < 64 {
			if !rowSelected[j] && abs(f[j][i]) > matrixRankEps {
				break
			}
			j++
		}
		if j == 64 {
			continue
		}

		rank++
		rowSelected[j] = true
		for p := i + 1; p < 64; p++ {
			f[j][p] /= f[j][i]
		}
		for k := 0; k < 64; k++ {
			if k != j && abs(f[k][i]) > matrixRankEps {
				for p := i + 1; p < 64; p++ {
					f[k][p] -= f[j][p] * f[k][i]
				}
			}
		}
	}
	return rank
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// heavyHash expands hash into a 64-nibble vector, multiplies it by the
// matrix over nonnegative integers, quantizes each row pair down to one
// byte, XORs the result with the original 32 bytes of hash, and feeds the
// result back through the Keccak-f[1600] finalizer.
func (m *matrix) heavyHash(hash Uint256) Uint256 {
	h := hash.ToLEBytes()

	var x [64]uint16
	for i := 0; i < 32; i++ {
		x[2*i] = uint16(h[i] >> 4)
		x[2*i+1] = uint16(h[i] & 0x0F)
	}

	var product [32]byte
	for i := 0; i < 32; i++ {
		var sum0, sum1 uint16
		row0, row1 := m.rows[2*i], m.rows[2*i+1]
		for j := 0; j < 64; j++ {
			sum0 += row0[j] * x[j]
			sum1 += row1[j] * x[j]
		}
		// Each sum fits in 16 bits (max row sum 64*225=14400); sum>>10 is
		// always in 0..15, so no clamping is needed.
		product[i] = byte((sum0>>10)<<4) | byte(sum1>>10)
	}

	for i := range product {
		product[i] ^= h[i]
	}

	return heavyHash(Uint256FromLEBytes(product))
}
