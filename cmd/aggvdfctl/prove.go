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

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"math/big"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/classgroup/aggvdf/aggvdf"
	"github.com/classgroup/aggvdf/bqform"
)

var (
	proveYFile   string
	proveOutFile string
)

func loadYResults(path string, d *big.Int) ([]*bqform.Form, []int, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading y-file %s: %w", path, err)
	}
	var results []yResult
	if err := yaml.Unmarshal(raw, &results); err != nil {
		return nil, nil, fmt.Errorf("parsing y-file %s: %w", path, err)
	}

	ys := make([]*bqform.Form, len(results))
	aIters := make([]int, len(results))
	for i, r := range results {
		buf, err := hex.DecodeString(r.YHex)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding y_hex at index %d: %w", i, err)
		}
		form, err := bqform.DeserializeForm(buf, d)
		if err != nil {
			return nil, nil, fmt.Errorf("deserializing y at index %d: %w", i, err)
		}
		ys[i] = form
		aIters[i] = r.AIter
	}
	return ys, aIters, nil
}

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Aggregate per-challenge evaluations from --y-file into one proof",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest(cmd)
		if err != nil {
			return err
		}
		d, err := m.Discriminant()
		if err != nil {
			return err
		}
		challenges, err := m.ChallengeInts()
		if err != nil {
			return err
		}
		if proveYFile == "" {
			return fmt.Errorf("prove: --y-file is required")
		}
		ys, aIters, err := loadYResults(proveYFile, d)
		if err != nil {
			return err
		}

		proof, bIter, err := aggvdf.Prove(d, challenges, ys, aIters, m.Iterations)
		if err != nil {
			return err
		}

		proofHex := fmt.Sprintf("%x", bqform.SerializeForm(proof, d))
		out, err := yaml.Marshal(struct {
			ProofHex string `yaml:"proof_hex"`
			BIter    int    `yaml:"b_iter"`
		}{proofHex, bIter})
		if err != nil {
			return err
		}

		if proveOutFile == "" {
			fmt.Print(string(out))
			return nil
		}
		return ioutil.WriteFile(proveOutFile, out, 0o644)
	},
}

func init() {
	proveCmd.Flags().StringVar(&proveYFile, "y-file", "", "YAML file produced by the eval subcommand")
	proveCmd.Flags().StringVar(&proveOutFile, "out", "", "file to write the proof to (default: stdout)")
}
