// Copyright © 2026 Simplest OT Contributors
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
package ot

import "unicode/utf8"

// validateIndex enforces the wire invariant shared by every index in
// the protocol: valid UTF-8, at most 32 bytes once encoded.
func validateIndex(index string) error {
	if !utf8.ValidString(index) {
		return ErrInvalidIndex
	}
	if len(index) > 32 {
		return ErrInvalidIndex
	}
	return nil
}
