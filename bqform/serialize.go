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

// Width returns the byte width used to serialize one coefficient of a
// form of discriminant D, and to seed the hash-to-group sprout:
// ⌈(bits(|D|) + 16) / 16⌉ bytes.
func Width(d *big.Int) int {
	bits := new(big.Int).Abs(d).BitLen()
	return (bits + 16 + 15) >> 4
}

// EncodeInt returns the n-byte fixed-width signed big-endian two's
// complement encoding of x. For x >= 0 this is the standard zero-padded
// unsigned encoding; for x < 0, |x|-1 is encoded unsigned and every bit is
// inverted (equivalently, the inverted bytes are left-padded with 0xFF).
func EncodeInt(x *big.Int, n int) []byte {
	buf := make([]byte, n)
	if x.Sign() >= 0 {
		b := x.Bytes()
		copy(buf[n-len(b):], b)
		return buf
	}

	t := new(big.Int).Abs(x)
	t.Sub(t, bigOne)
	b := t.Bytes()
	copy(buf[n-len(b):], b)
	for i := range buf {
		buf[i] = ^buf[i]
	}
	return buf
}

// DecodeInt reverses EncodeInt: it interprets buf as a signed two's
// complement big-endian integer, sign determined by the high bit of the
// first byte.
func DecodeInt(buf []byte) *big.Int {
	if len(buf) == 0 {
		return big.NewInt(0)
	}
	if buf[0]&0x80 == 0 {
		return new(big.Int).SetBytes(buf)
	}

	inv := make([]byte, len(buf))
	for i, b := range buf {
		inv[i] = ^b
	}
	t := new(big.Int).SetBytes(inv)
	t.Add(t, bigOne)
	return t.Neg(t)
}

// SerializeForm encodes (a, b) of f at the width implied by D, a and b
// each taking Width(d) bytes, a first.
func SerializeForm(f *Form, d *big.Int) []byte {
	w := Width(d)
	out := make([]byte, 0, 2*w)
	out = append(out, EncodeInt(f.a, w)...)
	out = append(out, EncodeInt(f.b, w)...)
	return out
}

// DeserializeForm decodes a form previously produced by SerializeForm,
// recovering c from (a, b, D) and rejecting anything that is not already
// the canonical reduced representative of its class.
func DeserializeForm(buf []byte, d *big.Int) (*Form, error) {
	w := Width(d)
	if len(buf) != 2*w {
		return nil, ErrInvalidForm
	}
	a := DecodeInt(buf[:w])
	b := DecodeInt(buf[w:])
	if a.Sign() <= 0 {
		return nil, ErrInvalidForm
	}
	f, err := NewFromAB(a, b, d)
	if err != nil {
		return nil, err
	}
	if !f.IsReduced() {
		return nil, ErrNotReduced
	}
	return f, nil
}
