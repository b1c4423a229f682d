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

package logger

import "github.com/getamis/sirius/log"

var defaultLogger = log.Discard()

// Logger returns the package-wide logger used by every component of the
// aggregate VDF core.
func Logger() log.Logger {
	return defaultLogger
}

// SetLogger replaces the package-wide logger. Call once from main before
// any core operation runs.
func SetLogger(l log.Logger) {
	defaultLogger = l
}
