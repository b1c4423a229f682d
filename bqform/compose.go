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

// Compose returns the reduced product f ∘ other (NUCOMP). Adapted from
// "Solving the Pell Equation" by Jacobson and Williams, via Maxwell
// Sayles' libqform mpz_qform.c.
func (f *Form) Compose(other *Form, lroot *big.Int) *Form {
	a1 := new(big.Int).Set(f.a)
	b1 := new(big.Int).Set(f.b)
	a2 := new(big.Int).Set(other.a)
	b2 := new(big.Int).Set(other.b)
	c2 := new(big.Int).Set(other.c)

	if a1.Cmp(a2) < 0 {
		a1, a2 = a2, a1
		b1, b2 = b2, b1
		c2 = new(big.Int).Set(f.c)
	}

	ss := new(big.Int).Add(b1, b2)
	ss.Rsh(ss, 1)

	m := new(big.Int).Sub(b1, b2)
	m.Rsh(m, 1)

	v1, _, sp := extGCD(a2, a1)

	k := new(big.Int).Mul(m, v1)
	k.Mod(k, a1)

	if sp.Cmp(bigOne) != 0 {
		u2, v2, s := extGCD(sp, ss)

		k.Mul(k, u2)
		t := new(big.Int).Mul(v2, c2)
		k.Sub(k, t)

		if s.Cmp(bigOne) != 0 {
			a1.Div(a1, s)
			a2.Div(a2, s)
			c2.Mul(c2, s)
		}
		k.Mod(k, a1)
	}

	if a1.Cmp(lroot) < 0 {
		t := new(big.Int).Mul(a2, k)

		a := new(big.Int).Mul(a2, a1)
		b := new(big.Int).Lsh(t, 1)
		b.Add(b, b2)

		c := new(big.Int).Add(b2, t)
		c.Mul(c, k)
		c.Add(c, c2)
		c.Div(c, a1)

		result := &Form{a: a, b: b, c: c, d: new(big.Int).Set(f.d)}
		result.reduce()
		return result
	}

	r2 := new(big.Int).Set(a1)
	r1 := new(big.Int).Set(k)
	cc2 := big.NewInt(0)
	cc1 := big.NewInt(-1)

	r2, r1, cc2, cc1 = partialGCD(r2, r1, cc2, cc1, lroot)

	t := new(big.Int).Mul(a2, r1)
	m1 := new(big.Int).Mul(m, cc1)
	m1.Add(m1, t)
	m1.Div(m1, a1)

	m2 := new(big.Int).Mul(ss, r1)
	tv := new(big.Int).Mul(c2, cc1)
	m2.Sub(m2, tv)
	m2.Div(m2, a1)

	a := new(big.Int).Mul(r1, m1)
	tv = new(big.Int).Mul(cc1, m2)
	a.Sub(a, tv)
	if cc1.Sign() > 0 {
		a.Neg(a)
	}

	b := new(big.Int).Mul(a, cc2)
	b.Sub(t, b)
	b.Lsh(b, 1)
	b.Div(b, cc1)
	b.Sub(b, b2)
	b.Mod(b, new(big.Int).Lsh(a, 1))

	if a.Sign() < 0 {
		a.Neg(a)
	}

	result, err := NewFromAB(a, b, f.d)
	if err != nil {
		panic(err)
	}
	result.reduce()
	return result
}

// Square returns the reduced square f ∘ f (NUDUPL), specialized from
// Compose for the case of squaring a single form. Adapted from the same
// libqform source as Compose.
func (f *Form) Square(lroot *big.Int) *Form {
	a1 := new(big.Int).Set(f.a)
	b1 := new(big.Int).Set(f.b)
	c1 := new(big.Int).Set(f.c)

	_, v, s := extGCD(a1, b1)

	u := new(big.Int).Mul(v, f.c)
	u.Neg(u)

	if s.Cmp(bigOne) != 0 {
		a1.Div(a1, s)
		c1.Mul(c1, s)
	}
	u.Mod(u, a1)

	if a1.Cmp(lroot) <= 0 {
		t := new(big.Int).Mul(a1, u)

		a := new(big.Int).Mul(a1, a1)
		b := new(big.Int).Lsh(t, 1)
		b.Add(b1, b)

		c := new(big.Int).Add(b1, t)
		c.Mul(c, u)
		c.Add(c, c1)
		c.Div(c, a1)

		result := &Form{a: a, b: b, c: c, d: new(big.Int).Set(f.d)}
		result.reduce()
		return result
	}

	r2 := new(big.Int).Set(a1)
	r1 := new(big.Int).Set(u)
	cc2 := big.NewInt(0)
	cc1 := big.NewInt(-1)

	r2, r1, cc2, cc1 = partialGCD(r2, r1, cc2, cc1, lroot)

	m2 := new(big.Int).Mul(r1, b1)
	tv := new(big.Int).Mul(s, cc1)
	tv.Mul(tv, f.c)
	m2.Sub(m2, tv)
	m2.Div(m2, a1)

	tv = new(big.Int).Mul(r1, r1)
	a := new(big.Int).Mul(cc1, m2)
	a.Sub(tv, a)
	if cc1.Sign() > 0 {
		a.Neg(a)
	}

	b := new(big.Int).Mul(cc2, a)
	tv = new(big.Int).Mul(r1, a1)
	b.Sub(tv, b)
	b.Div(new(big.Int).Lsh(b, 1), cc1)
	b.Sub(b, b1)
	b.Mod(b, new(big.Int).Lsh(a, 1))

	if a.Sign() < 0 {
		a.Neg(a)
	}

	result, err := NewFromAB(a, b, f.d)
	if err != nil {
		panic(err)
	}
	result.reduce()
	return result
}
