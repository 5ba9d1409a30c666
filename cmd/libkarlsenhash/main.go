// Command libkarlsenhash is the FFI shared-library surface of spec.md §6:
// built with -buildmode=c-shared, it exports exactly the karlsen symbol of
// the stable C ABI. It holds no state of its own — each call builds a
// fresh BlockSeed and State, mirroring the original's stateless, one-shot
// FFI semantics. Threshold comparison is left to the caller: the FFI
// flavor computes the V1 PoW hash only.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/karlsen-network/karlsend/domain/consensus/utils/pow"
)

//export karlsen
func karlsen(work *C.uint64_t, timestamp C.uint64_t, nonce C.uint64_t, resOut *C.uint64_t, logFlag C.uint8_t) C.uint32_t {
	if work == nil || resOut == nil {
		// Null work/res_out is the caller's contract violation per spec.md
		// §7; there is no defined error code for this path, so this simply
		// avoids dereferencing a null pointer from the Go side.
		return 0
	}

	workLimbs := *(*[4]uint64)(unsafe.Pointer(work))
	headerHash := pow.NewUint256(workLimbs)

	if logFlag == 0 {
		fmt.Printf("%s,%d,%d\n", headerHash, uint64(timestamp), uint64(nonce))
	}

	seed := pow.BlockSeed{
		HeaderHash: headerHash,
		Timestamp:  uint64(timestamp),
		Nonce:      uint64(nonce),
	}

	s, err := pow.NewState(pow.V1, seed)
	if err != nil {
		// Matrix generation failure is the only internal-error path pow
		// can surface; the FFI contract reserves no error code for it, so
		// res_out is simply left untouched and the reserved return value
		// of 0 is used.
		return 0
	}

	hash := s.CalculatePow(uint64(nonce))
	out := (*[4]uint64)(unsafe.Pointer(resOut))
	*out = hash.Limbs

	return 0
}

func main() {}
