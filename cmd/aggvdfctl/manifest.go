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
	"math/big"

	"gopkg.in/yaml.v2"
)

// Manifest describes one batch of aggregate VDF work: the shared
// discriminant and iteration count, and the per-element challenges
// (decimal strings, since big.Int does not round-trip through plain
// YAML scalars).
type Manifest struct {
	DiscriminantAbs string   `yaml:"discriminant_abs"`
	Iterations      uint64   `yaml:"iterations"`
	Threads         int      `yaml:"threads"`
	Challenges      []string `yaml:"challenges"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Threads <= 0 {
		m.Threads = 4
	}
	return &m, nil
}

// Discriminant returns the manifest's negative discriminant as a big.Int.
func (m *Manifest) Discriminant() (*big.Int, error) {
	abs, ok := new(big.Int).SetString(m.DiscriminantAbs, 10)
	if !ok {
		return nil, fmt.Errorf("invalid discriminant_abs %q", m.DiscriminantAbs)
	}
	return abs.Neg(abs), nil
}

// ChallengeInts parses the manifest's decimal challenge strings.
func (m *Manifest) ChallengeInts() ([]*big.Int, error) {
	out := make([]*big.Int, len(m.Challenges))
	for i, s := range m.Challenges {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid challenge %q at index %d", s, i)
		}
		out[i] = v
	}
	return out, nil
}
