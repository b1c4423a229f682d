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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// smallDiscriminant is a small negative prime discriminant ≡ 1 (mod 4),
// convenient for exercising the group laws without 1024-bit arithmetic.
var smallDiscriminant = big.NewInt(-263)

var _ = Describe("group laws", func() {
	d := smallDiscriminant
	lroot := Lroot(d)

	someForm := func() *Form {
		f, err := NewFromABC(big.NewInt(3), big.NewInt(1), big.NewInt(22))
		Expect(err).ShouldNot(HaveOccurred())
		return f
	}

	It("has a two-sided identity", func() {
		f := someForm()
		id := Identity(d)
		Expect(f.Compose(id, lroot).Equal(f)).Should(BeTrue())
		Expect(id.Compose(f, lroot).Equal(f)).Should(BeTrue())
	})

	It("composes a form with its inverse to the identity", func() {
		f := someForm()
		got := f.Compose(f.Inverse(), lroot)
		Expect(got.Equal(Identity(d))).Should(BeTrue())
	})

	It("is commutative", func() {
		f := someForm()
		g := Identity(d).Compose(someForm(), lroot).Compose(someForm(), lroot)
		Expect(f.Compose(g, lroot).Equal(g.Compose(f, lroot))).Should(BeTrue())
	})

	It("reduction is idempotent", func() {
		f := someForm()
		Expect(f.IsReduced()).Should(BeTrue())
		cp := f.Copy()
		cp.reduce()
		Expect(cp.Equal(f)).Should(BeTrue())
	})

	It("agrees between Square and self-Compose", func() {
		f := someForm()
		Expect(f.Square(lroot).Equal(f.Compose(f, lroot))).Should(BeTrue())
	})

	It("Pow agrees with repeated composition for small exponents", func() {
		f := someForm()
		want := Identity(d)
		for i := 0; i < 5; i++ {
			want = want.Compose(f, lroot)
		}
		got := f.Pow(big.NewInt(5), lroot)
		Expect(got.Equal(want)).Should(BeTrue())
	})

	It("Pow of zero is the identity", func() {
		f := someForm()
		Expect(f.Pow(big.NewInt(0), lroot).Equal(Identity(d))).Should(BeTrue())
	})
})

var _ = Describe("constructors", func() {
	It("rejects a non-negative discriminant", func() {
		_, err := NewFromABC(big.NewInt(1), big.NewInt(0), big.NewInt(-5))
		Expect(err).Should(Equal(ErrPositiveDiscriminant))
	})

	It("Lroot is the integer fourth root of -D", func() {
		d := big.NewInt(-10000)
		got := Lroot(d)
		// 10000^(1/4) = 10
		Expect(got.Cmp(big.NewInt(10))).Should(Equal(0))
	})
})
