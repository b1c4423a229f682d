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

// extGCD extends math/big's GCD to signed inputs x, y: finds a, b such
// that a*x + b*y = gcd(|x|, |y|), with the sign conventions needed by
// nucomp/nudupl. If y = 0, returns a = sign(x), b = 0, gcd = |x|.
func extGCD(x, y *big.Int) (*big.Int, *big.Int, *big.Int) {
	absX := new(big.Int).Abs(x)
	absY := new(big.Int).Abs(y)

	if y.Sign() == 0 {
		return big.NewInt(int64(x.Sign())), big.NewInt(0), absX
	}

	a, b := big.NewInt(0), big.NewInt(0)
	gcd := new(big.Int).GCD(a, b, absX, absY)

	switch {
	case x.Sign() < 0 && y.Sign() < 0:
		return a.Neg(a), b.Neg(b), gcd
	case x.Sign() < 0:
		return a.Neg(a), b, gcd
	case y.Sign() < 0:
		return a, b.Neg(b), gcd
	default:
		return a, b, gcd
	}
}

// partialGCD runs the Lehmer-style partial extended GCD used by NUCOMP and
// NUDUPL to reduce the near-Lroot-sized leg of the composition, tracking
// the cofactors C2/C1 alongside the remainders R2/R1. Adapted from Maxwell
// Sayles' liboptarith mpz_xgcd.c partial GCD.
func partialGCD(r2, r1, c2, c1, bound *big.Int) (*big.Int, *big.Int, *big.Int, *big.Int) {
	var a2, a1, b2, b1, t, rr2, rr1, qq, bb int64

	q, r, tmp1, tmp2 := new(big.Int), new(big.Int), new(big.Int), new(big.Int)

	for r1.Sign() != 0 && r1.Cmp(bound) > 0 {
		shift := r2.BitLen() - gmpLimbBits + 1
		shift1 := r1.BitLen() - gmpLimbBits + 1
		if shift1 > shift {
			shift = shift1
		}
		if shift < 0 {
			shift = 0
		}

		rr2 = new(big.Int).Rsh(r2, uint(shift)).Int64()
		rr1 = new(big.Int).Rsh(r1, uint(shift)).Int64()
		bb = new(big.Int).Rsh(bound, uint(shift)).Int64()

		a2, a1, b2, b1 = 0, 1, 1, 0
		i := 0

		for rr1 != 0 && rr1 > bb {
			qq = rr2 / rr1

			t = rr2 - qq*rr1
			rr2, rr1 = rr1, t

			t = a2 - qq*a1
			a2, a1 = a1, t

			t = b2 - qq*b1
			b2, b1 = b1, t

			if i&1 != 0 {
				if rr1 < -b1 || rr2-rr1 < a1-a2 {
					break
				}
			} else {
				if rr1 < -a1 || rr2-rr1 < b1-b2 {
					break
				}
			}
			i++
		}

		if i == 0 {
			q, r = new(big.Int).DivMod(r2, r1, r)

			r2 = new(big.Int).Set(r1)
			r1 = r

			prevC1 := new(big.Int).Set(c1)
			qc1 := new(big.Int).Mul(q, c1)
			c1 = new(big.Int).Sub(c2, qc1)
			c2 = prevC1
		} else {
			tmp1.Mul(r2, big.NewInt(b2))
			tmp2.Mul(r1, big.NewInt(a2))
			r = new(big.Int).Add(tmp1, tmp2)

			tmp1.Mul(r2, big.NewInt(b1))
			tmp2.Mul(r1, big.NewInt(a1))
			newR1 := new(big.Int).Add(tmp1, tmp2)

			r2 = r
			r1 = newR1

			tmp1.Mul(c2, big.NewInt(b2))
			tmp2.Mul(c1, big.NewInt(a2))
			rC := new(big.Int).Add(tmp1, tmp2)

			tmp1.Mul(c2, big.NewInt(b1))
			tmp2.Mul(c1, big.NewInt(a1))
			newC1 := new(big.Int).Add(tmp1, tmp2)

			c2 = rC
			c1 = newC1

			if r1.Sign() < 0 {
				r1.Neg(r1)
				c1.Neg(c1)
			}
			if r2.Sign() < 0 {
				r2.Neg(r2)
				c2.Neg(c2)
			}
		}
	}

	if r2.Sign() < 0 {
		r2.Neg(r2)
		c2.Neg(c2)
		c1.Neg(c1)
	}

	return r2, r1, c2, c1
}
