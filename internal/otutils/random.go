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

// Package otutils holds small helpers shared by the ot package that do
// not belong on any single exported type.
package otutils

import (
	"crypto/rand"
	"errors"
)

// ErrEmptySlice is returned if the requested size is not positive.
var ErrEmptySlice = errors.New("otutils: size must be positive")

// RandomBytes returns size cryptographically secure random bytes read
// from the OS CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	if size < 1 {
		return nil, ErrEmptySlice
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
