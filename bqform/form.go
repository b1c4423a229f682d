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

// Package bqform implements the group of reduced primitive positive-definite
// binary quadratic forms of a fixed negative discriminant D — the ideal
// class group Cl(D) of the imaginary quadratic order of discriminant D.
//
// A form (a, b, c) represents ax^2 + bxy + cy^2 with b^2 - 4ac = D < 0.
// Composition is nucomp, squaring is nudupl; both are followed by Gauss
// reduction to the unique canonical representative of the class.
package bqform

import (
	"errors"
	"math/big"
)

var (
	bigOne = big.NewInt(1)

	// gmpLimbBits bounds the partial-GCD fast path to machine-word-sized
	// quotients, matching the reference Lehmer-style partial GCD.
	gmpLimbBits = 64

	// ErrPositiveDiscriminant is returned when a candidate (a, b, c) or
	// (a, b, D) does not describe a form of negative discriminant.
	ErrPositiveDiscriminant = errors.New("bqform: discriminant must be negative")

	// ErrNotReduced is returned by DeserializeForm when the decoded form
	// is not the canonical reduced representative of its class.
	ErrNotReduced = errors.New("bqform: form is not reduced")

	// ErrInvalidForm is returned when a serialized form cannot be
	// decoded into a well-formed (a, b) pair.
	ErrInvalidForm = errors.New("bqform: malformed form encoding")
)

// Form is an immutable binary quadratic form of discriminant D. The group
// operations in this package always return the reduced representative;
// NewFromABC and NewFromAB keep the coefficients they are given and do not
// reduce them.
type Form struct {
	a, b, c, d *big.Int
}

// A returns the first coefficient.
func (f *Form) A() *big.Int { return new(big.Int).Set(f.a) }

// B returns the second coefficient.
func (f *Form) B() *big.Int { return new(big.Int).Set(f.b) }

// C returns the third coefficient.
func (f *Form) C() *big.Int { return new(big.Int).Set(f.c) }

// Discriminant returns b^2 - 4ac.
func (f *Form) Discriminant() *big.Int { return new(big.Int).Set(f.d) }

// NewFromABC builds a form directly from its three coefficients,
// recomputing and validating the discriminant.
func NewFromABC(a, b, c *big.Int) (*Form, error) {
	d := new(big.Int).Mul(b, b)
	ac := new(big.Int).Mul(a, c)
	d.Sub(d, ac.Lsh(ac, 2))
	if d.Sign() >= 0 {
		return nil, ErrPositiveDiscriminant
	}
	return &Form{a: new(big.Int).Set(a), b: new(big.Int).Set(b), c: new(big.Int).Set(c), d: d}, nil
}

// NewFromAB recovers c = (b^2 - D) / 4a and builds the form. This is the
// "discriminant-form recovery from (a, b)" primitive used when decoding a
// two-member wire form.
func NewFromAB(a, b, d *big.Int) (*Form, error) {
	if d.Sign() >= 0 {
		return nil, ErrPositiveDiscriminant
	}
	c := new(big.Int).Mul(b, b)
	c.Sub(c, d)
	c.Div(c, a)
	c.Rsh(c, 2)
	return &Form{a: new(big.Int).Set(a), b: new(big.Int).Set(b), c: c, d: new(big.Int).Set(d)}, nil
}

// Identity returns the principal form of discriminant D: (1, 1, (1-D)/4).
// D is assumed congruent to 1 mod 4, as required throughout this package.
func Identity(d *big.Int) *Form {
	f, err := NewFromAB(big.NewInt(1), big.NewInt(1), d)
	if err != nil {
		// D ≡ 1 (mod 4) and D < 0 is an invariant enforced on every
		// entry point into this package; a violation here means a
		// caller passed an invalid discriminant upstream.
		panic(err)
	}
	return f
}

// Lroot returns floor((-D)^(1/4)), the reduction bound shared by every
// nucomp/nudupl call for a given discriminant. Derive once per D and pass
// it to every operation.
func Lroot(d *big.Int) *big.Int {
	absD := new(big.Int).Abs(d)
	r := new(big.Int).Sqrt(absD)
	r.Sqrt(r)
	return r
}

// Copy returns an independent copy of f.
func (f *Form) Copy() *Form {
	return &Form{
		a: new(big.Int).Set(f.a),
		b: new(big.Int).Set(f.b),
		c: new(big.Int).Set(f.c),
		d: new(big.Int).Set(f.d),
	}
}

// Equal reports whether f and other represent the same form.
func (f *Form) Equal(other *Form) bool {
	return f.a.Cmp(other.a) == 0 && f.b.Cmp(other.b) == 0 && f.c.Cmp(other.c) == 0
}

// IsReduced reports whether f is the canonical reduced representative of
// its class: |b| <= a <= c, with b >= 0 whenever a = |b| or a = c.
func (f *Form) IsReduced() bool {
	absB := new(big.Int).Abs(f.b)

	if f.a.Cmp(absB) < 0 || f.a.Cmp(f.c) > 0 {
		return false
	}
	if (f.a.Cmp(absB) == 0 || f.a.Cmp(f.c) == 0) && f.b.Sign() < 0 {
		return false
	}
	return true
}

// Inverse returns the reduced inverse form (a, -b, c).
func (f *Form) Inverse() *Form {
	inv := f.Copy()
	inv.b.Neg(inv.b)
	inv.reduce()
	return inv
}

// Reduction of Positive Definite Forms: Algorithm 5.4.2, A Course in
// Computational Algebraic Number Theory, Cohen GTM 138.
func (f *Form) reduce() {
	negA := new(big.Int).Neg(f.a)
	if f.b.Cmp(negA) == 1 && f.b.Cmp(f.a) <= 0 {
		f.reductionMainStep()
		return
	}
	f.euclideanStep()
	f.reductionMainStep()
}

func (f *Form) reductionMainStep() {
	for !f.IsReduced() {
		switch {
		case f.a.Cmp(f.c) > 0:
			f.b.Neg(f.b)
			f.a, f.c = f.c, f.a
		case f.a.Cmp(f.c) == 0 && f.b.Sign() < 0:
			f.b.Neg(f.b)
		}
		f.euclideanStep()
	}
}

func (f *Form) euclideanStep() {
	twiceA := new(big.Int).Lsh(f.a, 1)
	r := new(big.Int)
	q, r := new(big.Int).DivMod(f.b, twiceA, r)

	if r.Cmp(f.a) > 0 {
		r.Sub(r, twiceA)
		q.Add(q, bigOne)
	}

	bPlusR := new(big.Int).Add(f.b, r)
	bPlusR.Mul(bPlusR, q)
	half := bPlusR.Rsh(bPlusR, 1)

	f.c.Sub(f.c, half)
	f.b = r
}
