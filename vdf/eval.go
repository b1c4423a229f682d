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

// Package vdf computes single verifiable delay function evaluations:
// y = g^(2^T) in Cl(D), obtained by T sequential squarings under
// reduction. This is deliberately single-threaded; the delay property of
// a VDF depends on there being no faster path to y than T squarings.
package vdf

import (
	"math/big"

	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/classgroup"
	"github.com/classgroup/aggvdf/logger"
)

// Eval returns (y, a_iter) where y = g^(2^T) for g = H_G(challenge, D).
func Eval(d, challenge *big.Int, iterations uint64) (*bqform.Form, int, error) {
	return EvalWithProgress(d, challenge, iterations, nil)
}

// EvalWithProgress behaves as Eval but invokes onStep after every
// squaring, letting a caller (e.g. the CLI) drive a progress indicator
// over a long-running evaluation. onStep may be nil.
func EvalWithProgress(d, challenge *big.Int, iterations uint64, onStep func(done uint64)) (*bqform.Form, int, error) {
	lroot := bqform.Lroot(d)

	g, aIter, err := classgroup.HashToGroup(challenge, d)
	if err != nil {
		return nil, 0, err
	}

	logger.Logger().Debug("vdf: starting sequential evaluation", "iterations", iterations)
	y := g
	for i := uint64(0); i < iterations; i++ {
		y = y.Square(lroot)
		if onStep != nil {
			onStep(i + 1)
		}
	}
	return y, aIter, nil
}
