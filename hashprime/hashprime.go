// Copyright © 2019 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hashprime rejection-samples primes from an iterated SHA-256
// expansion of a seed ("sprout"). It is the Fiat-Shamir primitive shared
// by the aggregate prover and verifier to derive the 264-bit challenge B.
package hashprime

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

// ErrInvalidBitLength is returned when the requested bit length is not a
// multiple of 8.
var ErrInvalidBitLength = errors.New("hashprime: bit length must be a multiple of 8")

const millerRabinRounds = 20

// Increment advances a sprout buffer in place between successive SHA-256
// calls. hash_prime uses the standard carry-propagating counter
// (CarryPropagate) and H_G uses a variant with the inverted break
// condition (see package classgroup and SPEC_FULL.md §9); both walk the
// buffer backward from the last byte.
type Increment func(sprout []byte)

// CarryPropagate is the standard big-endian counter increment: add one to
// the last byte, and keep carrying into the preceding byte only while the
// current byte wraps to zero. This is the variant used by hash_prime and
// hash_prime_fast.
func CarryPropagate(sprout []byte) {
	for i := len(sprout) - 1; i >= 0; i-- {
		sprout[i]++
		if sprout[i] != 0 {
			break
		}
	}
}

// Expand builds the L-bit (L a multiple of 8) candidate integer at the
// sprout's current position by repeatedly advancing it with increment and
// hashing, concatenating digest bytes until enough have accumulated, then
// truncating to exactly L/8 bytes. The sprout is mutated in place, so
// consecutive calls continue the same walk.
func Expand(sprout []byte, bits int, increment Increment) *big.Int {
	need := bits / 8
	blob := make([]byte, 0, need)
	for len(blob)*8 < bits {
		increment(sprout)
		digest := sha256.Sum256(sprout)
		remaining := need - len(blob)
		if remaining > len(digest) {
			remaining = len(digest)
		}
		blob = append(blob, digest[:remaining]...)
	}
	return new(big.Int).SetBytes(blob)
}

// ApplyForceBits sets every bit named in forceBits to 1, then
// unconditionally forces bit 0 to 1 so every candidate is odd.
func ApplyForceBits(p *big.Int, forceBits []int) {
	for _, b := range forceBits {
		p.SetBit(p, b, 1)
	}
	p.SetBit(p, 0, 1)
}

// HashPrime rejection-samples an L-bit prime from seed, forcing the bits
// in forceBits (and the low bit) to 1. It returns the prime and its
// 1-based acceptance index.
func HashPrime(seed []byte, bits int, forceBits []int) (*big.Int, int, error) {
	if bits%8 != 0 {
		return nil, 0, ErrInvalidBitLength
	}
	sprout := append([]byte(nil), seed...)
	iter := 0
	for {
		p := Expand(sprout, bits, CarryPropagate)
		ApplyForceBits(p, forceBits)
		iter++
		if p.ProbablyPrime(millerRabinRounds) {
			return p, iter, nil
		}
	}
}

// HashPrimeFast behaves as HashPrime but skips the primality test for
// every candidate index below skip, fast-forwarding to the prime found by
// a prior HashPrime call of the same seed. It still evolves the sprout on
// every iteration: the speedup is purely in skipping ProbablyPrime calls.
func HashPrimeFast(seed []byte, bits int, forceBits []int, skip int) (*big.Int, error) {
	if bits%8 != 0 {
		return nil, ErrInvalidBitLength
	}
	sprout := append([]byte(nil), seed...)
	iter := 0
	for {
		p := Expand(sprout, bits, CarryPropagate)
		ApplyForceBits(p, forceBits)
		iter++
		if iter < skip {
			continue
		}
		if p.ProbablyPrime(millerRabinRounds) {
			return p, nil
		}
	}
}
