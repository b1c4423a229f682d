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

import "math/big"

// Pow returns f^e in Cl(D) via binary square-and-multiply. Negative
// exponents are rejected since every caller in this module deals in
// non-negative scalars (rejection-sampled hash outputs).
func (f *Form) Pow(e *big.Int, lroot *big.Int) *Form {
	if e.Sign() < 0 {
		panic("bqform: negative exponent")
	}
	if e.Sign() == 0 {
		return Identity(f.d)
	}

	result := Identity(f.d)
	base := f.Copy()
	bits := e.BitLen()
	for i := 0; i < bits; i++ {
		if e.Bit(i) == 1 {
			result = result.Compose(base, lroot)
		}
		if i != bits-1 {
			base = base.Square(lroot)
		}
	}
	return result
}
