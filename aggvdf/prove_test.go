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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/vdf"
)

func TestAggvdf(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "aggvdf Suite")
}

// testDiscriminant is a small negative discriminant ≡ 1 (mod 4) (|D| = 9·271),
// sized for fast tests rather than for cryptographic soundness.
var testDiscriminant = big.NewInt(-2439)

func evalBatch(d *big.Int, challenges []*big.Int, iterations uint64) ([]*bqform.Form, []int) {
	ys := make([]*bqform.Form, len(challenges))
	aIters := make([]int, len(challenges))
	for i, c := range challenges {
		y, aIter, err := vdf.Eval(d, c, iterations)
		Expect(err).ShouldNot(HaveOccurred())
		ys[i] = y
		aIters[i] = aIter
	}
	return ys, aIters
}

var _ = Describe("PowFormWithQuotient", func() {
	It("computes g^floor(2^T / B)", func() {
		d := testDiscriminant
		lroot := bqform.Lroot(d)
		g, _, err := vdf.Eval(d, big.NewInt(7), 0)
		Expect(err).ShouldNot(HaveOccurred())

		iterations := uint64(37)
		b := big.NewInt(97)

		got := PowFormWithQuotient(g, d, iterations, b, lroot)

		two := big.NewInt(2)
		pow2T := new(big.Int).Exp(two, big.NewInt(int64(iterations)), nil)
		q := new(big.Int).Div(pow2T, b)
		want := g.Pow(q, lroot)

		Expect(got.Equal(want)).Should(BeTrue())
	})
})

var _ = Describe("Prove/Verify round trip", func() {
	It("accepts a batch proved and verified under the same order", func() {
		d := testDiscriminant
		challenges := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}
		iterations := uint64(16)

		ys, aIters := evalBatch(d, challenges, iterations)

		proof, bIter, err := Prove(d, challenges, ys, aIters, iterations)
		Expect(err).ShouldNot(HaveOccurred())

		ok, err := Verify(d, challenges, ys, proof, iterations, aIters, bIter, 2)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a permuted batch", func() {
		d := testDiscriminant
		challenges := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}
		iterations := uint64(16)

		ys, aIters := evalBatch(d, challenges, iterations)
		proof, bIter, err := Prove(d, challenges, ys, aIters, iterations)
		Expect(err).ShouldNot(HaveOccurred())

		permutedChallenges := []*big.Int{challenges[1], challenges[0], challenges[2], challenges[3]}
		permutedYs := []*bqform.Form{ys[1], ys[0], ys[2], ys[3]}
		permutedAIters := []int{aIters[1], aIters[0], aIters[2], aIters[3]}

		ok, err := Verify(d, permutedChallenges, permutedYs, proof, iterations, permutedAIters, bIter, 2)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeFalse())
	})

	It("rejects a tampered proof", func() {
		d := testDiscriminant
		challenges := []*big.Int{big.NewInt(1), big.NewInt(2)}
		iterations := uint64(16)

		ys, aIters := evalBatch(d, challenges, iterations)
		proof, bIter, err := Prove(d, challenges, ys, aIters, iterations)
		Expect(err).ShouldNot(HaveOccurred())

		tampered, terr := bqform.NewFromAB(proof.A(), new(big.Int).Add(proof.B(), big.NewInt(2)), d)
		if terr != nil {
			return
		}

		ok, err := Verify(d, challenges, ys, tampered, iterations, aIters, bIter, 2)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeFalse())
	})

	It("rejects mismatched slice lengths", func() {
		d := testDiscriminant
		_, _, err := Prove(d, []*big.Int{big.NewInt(1)}, []*bqform.Form{}, []int{1}, 1)
		Expect(err).Should(Equal(ErrMismatchedLength))
	})
})
