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

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/classgroup/aggvdf/aggvdf"
	"github.com/classgroup/aggvdf/bqform"
)

var (
	verifyYFile     string
	verifyProofFile string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proof produced by the prove subcommand against a manifest",
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
		if verifyYFile == "" || verifyProofFile == "" {
			return fmt.Errorf("verify: --y-file and --proof-file are required")
		}
		ys, aIters, err := loadYResults(verifyYFile, d)
		if err != nil {
			return err
		}

		proofRaw, err := ioutil.ReadFile(verifyProofFile)
		if err != nil {
			return fmt.Errorf("reading proof file %s: %w", verifyProofFile, err)
		}
		var proofDoc struct {
			ProofHex string `yaml:"proof_hex"`
			BIter    int    `yaml:"b_iter"`
		}
		if err := yaml.Unmarshal(proofRaw, &proofDoc); err != nil {
			return fmt.Errorf("parsing proof file %s: %w", verifyProofFile, err)
		}
		proofBuf, err := hex.DecodeString(proofDoc.ProofHex)
		if err != nil {
			return fmt.Errorf("decoding proof_hex: %w", err)
		}
		proof, err := bqform.DeserializeForm(proofBuf, d)
		if err != nil {
			return fmt.Errorf("deserializing proof: %w", err)
		}

		ok, err := aggvdf.Verify(d, challenges, ys, proof, m.Iterations, aIters, proofDoc.BIter, m.Threads)
		if err != nil {
			return err
		}
		if ok {
			log.Info("verify: proof accepted", "challenges", len(challenges), "threads", m.Threads)
		} else {
			log.Warn("verify: proof rejected", "challenges", len(challenges), "threads", m.Threads)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyYFile, "y-file", "", "YAML file produced by the eval subcommand")
	verifyCmd.Flags().StringVar(&verifyProofFile, "proof-file", "", "YAML file produced by the prove subcommand")
}
