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
	"io/ioutil"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/classgroup/aggvdf/bqform"
	"github.com/classgroup/aggvdf/vdf"
)

// yResult is what gets written to the --out file for the eval subcommand:
// one serialized form plus its H_G iteration count per challenge.
type yResult struct {
	YHex  string `yaml:"y_hex"`
	AIter int    `yaml:"a_iter"`
}

var evalOutFile string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Sequentially evaluate a VDF for every challenge in the manifest",
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

		results := make([]yResult, len(challenges))
		for i, c := range challenges {
			bar := progressbar.Default(int64(m.Iterations), fmt.Sprintf("challenge %d/%d", i+1, len(challenges)))
			y, aIter, err := vdf.EvalWithProgress(d, c, m.Iterations, func(done uint64) {
				bar.Set(int(done))
			})
			if err != nil {
				return err
			}
			bar.Finish()
			results[i] = yResult{
				YHex:  fmt.Sprintf("%x", bqform.SerializeForm(y, d)),
				AIter: aIter,
			}
		}

		out, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Printf("evaluated %s challenges over %s iterations each\n",
			humanize.Comma(int64(len(challenges))), humanize.Comma(int64(m.Iterations)))

		if evalOutFile == "" {
			fmt.Print(string(out))
			return nil
		}
		return ioutil.WriteFile(evalOutFile, out, 0o644)
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalOutFile, "out", "", "file to write evaluation results to (default: stdout)")
}
