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

package api

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "api Suite")
}

var _ = Describe("blob interface round trip", func() {
	It("evaluates, proves, and verifies a batch through byte blobs only", func() {
		dBE := new(big.Int).Abs(big.NewInt(-2439)).Bytes()
		challengesBE := [][]byte{
			big.NewInt(11).Bytes(),
			big.NewInt(12).Bytes(),
			big.NewInt(13).Bytes(),
		}
		iterations := uint64(12)

		yBlobs, err := Eval(dBE, iterations, challengesBE)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(yBlobs).Should(HaveLen(3))

		proofBlob, err := Prove(dBE, iterations, challengesBE, yBlobs)
		Expect(err).ShouldNot(HaveOccurred())

		ok, err := Verify(dBE, iterations, challengesBE, yBlobs, proofBlob, 4)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ok).Should(BeTrue())
	})

	It("rejects a malformed blob shorter than the iteration suffix", func() {
		dBE := new(big.Int).Abs(big.NewInt(-2439)).Bytes()
		_, _, err := splitBlob([]byte{0x01, 0x02}, decodeD(dBE))
		Expect(err).Should(Equal(ErrMalformedBlob))
	})
})
