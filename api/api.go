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

// Package api exposes the aggregate VDF core as three byte-blob
// operations (Eval, Prove, Verify), matching the external interface any
// language binding would call through: D is passed as a big-endian
// magnitude (always negative), forms and per-element iteration counts are
// packed into fixed-layout blobs.
package api

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/classgroup/aggvdf/aggvdf"
	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/vdf"
)

// ErrMalformedBlob is returned when a y_blob or proof_blob is shorter
// than the mandatory 4-byte little-endian iteration-count suffix.
var ErrMalformedBlob = errors.New("api: blob too short to contain an iteration-count suffix")

// ErrMismatchedLength is returned when challenge and y_blob slices passed
// to Prove or Verify disagree in length.
var ErrMismatchedLength = errors.New("api: challenge and y_blob slices must have equal length")

const iterSuffixLen = 4

func decodeD(dBE []byte) *big.Int {
	absD := new(big.Int).SetBytes(dBE)
	return new(big.Int).Neg(absD)
}

func appendLE32(blob []byte, v int) []byte {
	var suffix [iterSuffixLen]byte
	binary.LittleEndian.PutUint32(suffix[:], uint32(v))
	return append(blob, suffix[:]...)
}

func splitBlob(blob []byte, d *big.Int) (*bqform.Form, int, error) {
	if len(blob) < iterSuffixLen {
		return nil, 0, ErrMalformedBlob
	}
	split := len(blob) - iterSuffixLen
	iter := binary.LittleEndian.Uint32(blob[split:])
	form, err := bqform.DeserializeForm(blob[:split], d)
	if err != nil {
		return nil, 0, err
	}
	return form, int(iter), nil
}

// Eval is aggvdf_eval: evaluates one VDF per challenge and returns each
// as serialize_form(y, bits(|D|)) ‖ LE32(a_iter).
func Eval(dBE []byte, iterations uint64, challengesBE [][]byte) ([][]byte, error) {
	d := decodeD(dBE)
	yBlobs := make([][]byte, len(challengesBE))
	for i, cb := range challengesBE {
		c := new(big.Int).SetBytes(cb)
		y, aIter, err := vdf.Eval(d, c, iterations)
		if err != nil {
			return nil, err
		}
		yBlobs[i] = appendLE32(bqform.SerializeForm(y, d), aIter)
	}
	return yBlobs, nil
}

// Prove is aggvdf_prove: aggregates the given evaluations into one
// proof_blob = serialize_form(π, bits(|D|)) ‖ LE32(b_iter).
func Prove(dBE []byte, iterations uint64, challengesBE, yBlobs [][]byte) ([]byte, error) {
	d := decodeD(dBE)
	n := len(challengesBE)
	if len(yBlobs) != n {
		return nil, ErrMismatchedLength
	}

	challenges := make([]*big.Int, n)
	ys := make([]*bqform.Form, n)
	aIters := make([]int, n)
	for i := range challengesBE {
		challenges[i] = new(big.Int).SetBytes(challengesBE[i])
		form, aIter, err := splitBlob(yBlobs[i], d)
		if err != nil {
			return nil, err
		}
		ys[i] = form
		aIters[i] = aIter
	}

	proof, bIter, err := aggvdf.Prove(d, challenges, ys, aIters, iterations)
	if err != nil {
		return nil, err
	}
	return appendLE32(bqform.SerializeForm(proof, d), bIter), nil
}

// Verify is aggvdf_verify: checks proofBlob against the given
// evaluations under the given thread count.
func Verify(dBE []byte, iterations uint64, challengesBE, yBlobs [][]byte, proofBlob []byte, threads int) (bool, error) {
	d := decodeD(dBE)
	n := len(challengesBE)
	if len(yBlobs) != n {
		return false, ErrMismatchedLength
	}

	challenges := make([]*big.Int, n)
	ys := make([]*bqform.Form, n)
	aIters := make([]int, n)
	for i := range challengesBE {
		challenges[i] = new(big.Int).SetBytes(challengesBE[i])
		form, aIter, err := splitBlob(yBlobs[i], d)
		if err != nil {
			return false, err
		}
		ys[i] = form
		aIters[i] = aIter
	}

	proofForm, bIter, err := splitBlob(proofBlob, d)
	if err != nil {
		return false, err
	}

	return aggvdf.Verify(d, challenges, ys, proofForm, iterations, aIters, bIter, threads)
}
