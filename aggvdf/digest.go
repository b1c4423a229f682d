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

// Package aggvdf implements the aggregate Wesolowski prover and verifier:
// n independent VDF evaluations sharing a discriminant D and iteration
// count T are bundled into one constant-size proof.
package aggvdf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/classgroup/aggvdf/bqform"
)

// ErrMismatchedLength is returned when the challenge, y, or a_iter slices
// passed to Prove or Verify disagree in length.
var ErrMismatchedLength = errors.New("aggvdf: challenge, y, and a_iter slices must have equal length")

// buildDigest concatenates the serialized g_i in index order, followed by
// the serialized y_i in index order: the canonical transcript s fed to
// both hash_prime (for B) and the per-element scalar derivation.
func buildDigest(d *big.Int, gs, ys []*bqform.Form) []byte {
	buf := make([]byte, 0, 2*len(gs)*2*bqform.Width(d))
	for _, g := range gs {
		buf = append(buf, bqform.SerializeForm(g, d)...)
	}
	for _, y := range ys {
		buf = append(buf, bqform.SerializeForm(y, d)...)
	}
	return buf
}

// scalar derives α_i = int(SHA-256(BE32(i) ‖ s)).
func scalar(i int, s []byte) *big.Int {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(i))
	h := sha256.New()
	h.Write(idx[:])
	h.Write(s)
	digest := h.Sum(nil)
	return new(big.Int).SetBytes(digest)
}

// partitionRange returns the contiguous index range [lo, hi) owned by
// worker w out of threads total workers covering n items, matching the
// ⌊i·n/N⌋ boundaries of SPEC_FULL.md §4.6.
func partitionRange(n, threads, w int) (int, int) {
	lo := w * n / threads
	hi := (w + 1) * n / threads
	if w == threads-1 {
		hi = n
	}
	return lo, hi
}
