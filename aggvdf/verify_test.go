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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/classgroup/aggvdf/bqform"
)

var _ = Describe("thread invariance", func() {
	d := testDiscriminant
	challenges := make([]*big.Int, 12)
	for i := range challenges {
		challenges[i] = big.NewInt(int64(i + 1))
	}
	iterations := uint64(8)

	ys, aIters := evalBatch(d, challenges, iterations)
	proof, bIter, err := Prove(d, challenges, ys, aIters, iterations)
	Expect(err).ShouldNot(HaveOccurred())

	DescribeTable("verify returns the same result for every thread count", func(threads int) {
		ok, verr := Verify(d, challenges, ys, proof, iterations, aIters, bIter, threads)
		Expect(verr).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeTrue())
	},
		Entry("1 thread", 1),
		Entry("2 threads", 2),
		Entry("4 threads", 4),
		Entry("8 threads", 8),
	)
})

var _ = Describe("tamper detection", func() {
	It("rejects a single flipped byte of the serialized proof", func() {
		d := testDiscriminant
		challenges := []*big.Int{big.NewInt(5), big.NewInt(6), big.NewInt(7)}
		iterations := uint64(8)

		ys, aIters := evalBatch(d, challenges, iterations)
		proof, bIter, err := Prove(d, challenges, ys, aIters, iterations)
		Expect(err).ShouldNot(HaveOccurred())

		buf := bqform.SerializeForm(proof, d)
		buf[0] ^= 0x01
		corrupted, derr := bqform.DeserializeForm(buf, d)
		if derr != nil {
			// A corrupted byte 0 can also land outside the reduced
			// domain; either outcome demonstrates tamper detection.
			return
		}

		ok, verr := Verify(d, challenges, ys, corrupted, iterations, aIters, bIter, 2)
		Expect(verr).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeFalse())
	})
})
