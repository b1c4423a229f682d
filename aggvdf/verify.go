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

	"golang.org/x/sync/errgroup"

	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/classgroup"
	"github.com/classgroup/aggvdf/hashprime"
	"github.com/classgroup/aggvdf/logger"
)

// Verify checks an aggregated proof against n VDF evaluations sharing
// discriminant D and iteration count T. threads controls the fork-join
// width of both parallel phases; it never changes the result (testable
// property 3), only wall-clock time.
func Verify(d *big.Int, challenges []*big.Int, ys []*bqform.Form, proof *bqform.Form, iterations uint64, aIters []int, bIter int, threads int) (bool, error) {
	n := len(challenges)
	if len(ys) != n || len(aIters) != n {
		return false, ErrMismatchedLength
	}
	if threads < 1 {
		threads = 1
	}
	if threads > n {
		threads = n
	}

	lroot := bqform.Lroot(d)

	// Phase 1: recompute every g_i into a pre-sized, index-addressed
	// slice. Disjoint index writes from concurrent goroutines need no
	// mutex; errgroup.Wait is the join barrier.
	gs := make([]*bqform.Form, n)
	var phase1 errgroup.Group
	for w := 0; w < threads; w++ {
		w := w
		phase1.Go(func() error {
			lo, hi := partitionRange(n, threads, w)
			for i := lo; i < hi; i++ {
				g, err := classgroup.HashToGroupFast(challenges[i], d, aIters[i])
				if err != nil {
					return err
				}
				gs[i] = g
			}
			return nil
		})
	}
	if err := phase1.Wait(); err != nil {
		return false, err
	}

	s := buildDigest(d, gs, ys)
	b, err := hashprime.HashPrimeFast(s, fiatShamirPrimeBits, fiatShamirForceBits, bIter)
	if err != nil {
		return false, err
	}

	// Phase 2: each worker folds its own contiguous range into private
	// accumulators, written to its own slot only.
	aggGs := make([]*bqform.Form, threads)
	aggYs := make([]*bqform.Form, threads)
	var phase2 errgroup.Group
	for w := 0; w < threads; w++ {
		w := w
		phase2.Go(func() error {
			lo, hi := partitionRange(n, threads, w)
			localG := bqform.Identity(d)
			localY := bqform.Identity(d)
			for i := lo; i < hi; i++ {
				alpha := scalar(i, s)
				localG = localG.Compose(gs[i].Pow(alpha, lroot), lroot)
				localY = localY.Compose(ys[i].Pow(alpha, lroot), lroot)
			}
			aggGs[w] = localG
			aggYs[w] = localY
			return nil
		})
	}
	if err := phase2.Wait(); err != nil {
		return false, err
	}

	aggX := bqform.Identity(d)
	aggY := bqform.Identity(d)
	for w := 0; w < threads; w++ {
		aggX = aggX.Compose(aggGs[w], lroot)
		aggY = aggY.Compose(aggYs[w], lroot)
	}

	r := new(big.Int).Exp(big.NewInt(2), new(big.Int).SetUint64(iterations), b)

	lhs := proof.Pow(b, lroot).Compose(aggX.Pow(r, lroot), lroot)
	ok := lhs.Equal(aggY)

	logger.Logger().Debug("aggvdf: verified batch", "n", n, "threads", threads, "ok", ok)
	return ok, nil
}
