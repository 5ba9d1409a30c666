package pow

import "github.com/pkg/errors"

// BlockVersion selects which PoW kernel a State computes with.
type BlockVersion int

const (
	// V1 selects optoHeavyHash: a seed-derived matrix multiplied against
	// the nibble expansion of an intermediate BLAKE3 digest, finalized by
	// Keccak-f[1600].
	V1 BlockVersion = iota
	// V2 selects FishHash: a BLAKE3 pre-mix fed through a memory-hard
	// graph-lookup kernel, finalized by BLAKE3.
	V2
)

// BlockSeed (a.k.a. PartialBlock) is the immutable input to State
// construction. NonceMask and NonceFixed are carried but never consulted by
// this package's computation; they are reserved metadata for nonce-search
// strategies that sit outside this spec's scope.
type BlockSeed struct {
	HeaderHash Uint256
	Timestamp  uint64
	Nonce      uint64
	Target     Uint256
	NonceMask  uint64
	NonceFixed uint64
	Hash       string
}

// State is a per-seed PoW context: exactly one of matrix or fishHashContext
// is present, consistent with Version. It is created once per seed and reused
// for many CalculatePow calls; a fresh State must be built when the seed
// (header hash, timestamp) changes.
type State struct {
	version BlockVersion
	target  Uint256
	hasher  powHasher

	// Present iff version == V1.
	matrix *matrix
	// Present iff version == V2.
	fishHashContext *FishHashContext
}

// NewState builds a State for the given version and seed: constructs the
// PowHasher from (HeaderHash, Timestamp), and builds the matrix (V1) or
// FishHash context (V2). This is the expensive per-seed setup step; it is
// not on the per-nonce hot path.
func NewState(version BlockVersion, seed BlockSeed) (*State, error) {
	s := &State{
		version: version,
		target:  seed.Target,
		hasher:  newPowHasher(seed.HeaderHash, seed.Timestamp),
	}

	switch version {
	case V1:
		m, err := generateMatrix(seed.HeaderHash)
		if err != nil {
			return nil, errors.Wrap(err, "generating V1 matrix")
		}
		s.matrix = m
		log.Debugf("built V1 state from header hash %s", seed.HeaderHash)

	case V2:
		s.fishHashContext = NewFishHashContext(false)
		log.Debugf("built V2 state from header hash %s", seed.HeaderHash)

	default:
		return nil, errors.Errorf("unknown block version %d", version)
	}

	return s, nil
}

// CalculatePow hashes the nonce into the pre-image, finalizes the pre-image
// with BLAKE3, and runs the resulting digest through the version-selected
// kernel. It is a pure function of (s's contents, nonce); calling it never
// logs and never allocates beyond what the kernel itself needs.
func (s *State) CalculatePow(nonce uint64) Uint256 {
	h := s.hasher.finalizeWithNonce(nonce)

	switch s.version {
	case V1:
		// A V1 State is always constructed with a non-nil matrix by
		// NewState; if matrix is nil here the State was built incorrectly,
		// which spec.md classifies as a programming error, not a runtime
		// condition.
		return s.matrix.heavyHash(h)
	case V2:
		return fishHash(s.fishHashContext, h)
	default:
		panic("pow: State has an unrecognized version; this is a programming error")
	}
}

// CheckPow reports whether CalculatePow(nonce) meets s's target, i.e. is
// numerically <= target.
func (s *State) CheckPow(nonce uint64) bool {
	return s.CalculatePow(nonce).LessOrEqual(s.target)
}

// Target returns the target this State checks against.
func (s *State) Target() Uint256 {
	return s.target
}

// Version returns the block version this State was built for.
func (s *State) Version() BlockVersion {
	return s.version
}

// CheckProofOfWork is a convenience wrapper mirroring the teacher's
// package-level CheckProofOfWorkByBits helper: build a State for seed and
// report whether seed.Nonce meets seed.Target.
func CheckProofOfWork(version BlockVersion, seed BlockSeed) (bool, error) {
	s, err := NewState(version, seed)
	if err != nil {
		return false, err
	}
	return s.CheckPow(seed.Nonce), nil
}
