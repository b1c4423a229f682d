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

package aggvdf

import (
	"math/big"

	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/classgroup"
	"github.com/classgroup/aggvdf/hashprime"
	"github.com/classgroup/aggvdf/logger"
)

// fiatShamirPrimeBits and fiatShamirForceBits fix the Fiat-Shamir
// challenge B at 264 bits with the high bit (263) forced set.
const fiatShamirPrimeBits = 264

var fiatShamirForceBits = []int{263}

// Prove combines n VDF evaluations sharing discriminant D and iteration
// count T into a single aggregated proof. challenges, ys, and aIters must
// be index-aligned and of equal length; the proof depends on their order.
func Prove(d *big.Int, challenges []*big.Int, ys []*bqform.Form, aIters []int, iterations uint64) (*bqform.Form, int, error) {
	n := len(challenges)
	if len(ys) != n || len(aIters) != n {
		return nil, 0, ErrMismatchedLength
	}

	lroot := bqform.Lroot(d)

	gs := make([]*bqform.Form, n)
	for i := range challenges {
		g, err := classgroup.HashToGroupFast(challenges[i], d, aIters[i])
		if err != nil {
			return nil, 0, err
		}
		gs[i] = g
	}

	s := buildDigest(d, gs, ys)
	b, bIter, err := hashprime.HashPrime(s, fiatShamirPrimeBits, fiatShamirForceBits)
	if err != nil {
		return nil, 0, err
	}

	aggG := bqform.Identity(d)
	for i := 0; i < n; i++ {
		alpha := scalar(i, s)
		aggG = aggG.Compose(gs[i].Pow(alpha, lroot), lroot)
	}

	logger.Logger().Debug("aggvdf: proving batch", "n", n, "iterations", iterations, "b_iter", bIter)
	proof := PowFormWithQuotient(aggG, d, iterations, b, lroot)
	return proof, bIter, nil
}

// PowFormWithQuotient computes g^⌊2^T / B⌋ in O(T) group operations and
// O(1) auxiliary state, without ever materializing 2^T. It maintains a
// running quotient accumulator x and remainder-tracking scalar r such
// that after step t, x = g^q_t and r = 2^(t+1) mod B, where q_t is the
// quotient of 2^(t+1) divided by B.
func PowFormWithQuotient(g *bqform.Form, d *big.Int, iterations uint64, b, lroot *big.Int) *bqform.Form {
	x := bqform.Identity(d)
	r := big.NewInt(1)

	for t := uint64(0); t < iterations; t++ {
		x = x.Square(lroot)

		doubled := new(big.Int).Lsh(r, 1)
		if doubled.Cmp(b) >= 0 {
			x = x.Compose(g, lroot)
		}
		r = new(big.Int).Mod(doubled, b)
	}
	return x
}
