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
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/classgroup/aggvdf/classgroup"
)

var (
	discSeedHex string
	discBits    int
)

var discriminantCmd = &cobra.Command{
	Use:   "discriminant",
	Short: "Derive a fresh negative discriminant from a seed",
	Long:  `Generates a test discriminant deterministically from the bytes of a seed string, for use in a manifest's discriminant_abs field. Not part of the verification path: each party derives D independently from an agreed-upon seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if discSeedHex == "" {
			return fmt.Errorf("discriminant: --seed is required")
		}
		seed := []byte(discSeedHex)
		d, aIter, err := classgroup.CreateDiscriminant(seed, discBits)
		if err != nil {
			return err
		}
		abs := new(big.Int).Abs(d)
		fmt.Printf("discriminant_abs: %s  (iterations: %d)\n", abs.String(), aIter)
		return nil
	},
}

func init() {
	discriminantCmd.Flags().StringVar(&discSeedHex, "seed", "", "seed string to derive the discriminant from")
	discriminantCmd.Flags().IntVar(&discBits, "bits", 1024, "bit length of the discriminant")
}
