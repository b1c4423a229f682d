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

package bqform

import (
	"math/big"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestBqform(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "bqform Suite")
}

var _ = Describe("EncodeInt/DecodeInt", func() {
	DescribeTable("round trips and matches the literal two's complement encoding", func(x int64, n int, want []byte) {
		got := EncodeInt(big.NewInt(x), n)
		Expect(got).Should(Equal(want))
		Expect(DecodeInt(got).Int64()).Should(Equal(x))
	},
		Entry("negative one, width 4", int64(-1), 4, []byte{0xFF, 0xFF, 0xFF, 0xFF}),
		Entry("zero, width 4", int64(0), 4, []byte{0x00, 0x00, 0x00, 0x00}),
		Entry("positive small value", int64(1), 2, []byte{0x00, 0x01}),
		Entry("negative small value", int64(-2), 2, []byte{0xFF, 0xFE}),
	)

	It("is a total function agreeing mod 2^(8n) under signed interpretation", func() {
		x := big.NewInt(-12345)
		n := 8
		got := DecodeInt(EncodeInt(x, n))
		Expect(got.Cmp(x)).Should(Equal(0))
	})
})

var _ = Describe("SerializeForm/DeserializeForm", func() {
	It("round trips the identity form of a small discriminant", func() {
		d := big.NewInt(-23)
		f := Identity(d)
		buf := SerializeForm(f, d)
		Expect(len(buf)).Should(Equal(2 * Width(d)))

		got, err := DeserializeForm(buf, d)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(got.Equal(f)).Should(BeTrue())
	})

	It("rejects a buffer of the wrong length", func() {
		d := big.NewInt(-23)
		_, err := DeserializeForm([]byte{0x01}, d)
		Expect(err).Should(Equal(ErrInvalidForm))
	})
})
