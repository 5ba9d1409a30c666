// Package pow implements the proof-of-work verification core of a
// Karlsen/Kaspa-family blockchain miner: given a pre-PoW hash, a timestamp,
// a nonce, and a difficulty target, it computes a deterministic 256-bit PoW
// hash (V1 "optoHeavyHash" or V2 "FishHash") and decides whether that hash
// meets the target.
//
// The package has no I/O and performs no allocation beyond State
// construction; CalculatePow and CheckPow are pure functions of a State's
// contents and a nonce.
package pow
