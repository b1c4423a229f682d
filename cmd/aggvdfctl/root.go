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
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "aggvdfctl",
	Short: "aggvdfctl drives aggregatable VDF evaluation, proving and verification",
	Long:  `A command line client for evaluating class-group VDFs and building/checking aggregate Wesolowski proofs over a batch of challenges.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "manifest YAML file path")
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(discriminantCmd)
}

func initService(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	configFile = viper.GetString("config")
	return nil
}

func loadManifest(cmd *cobra.Command) (*Manifest, error) {
	if err := initService(cmd); err != nil {
		return nil, err
	}
	if configFile == "" {
		log.Crit("Failed to start: missing --config manifest path")
	}
	return LoadManifest(configFile)
}
