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

import "errors"

var (
	// ErrInvalidIndex is returned when an entry or request index is
	// not valid UTF-8, or its UTF-8 encoding exceeds 32 bytes.
	ErrInvalidIndex = errors.New("ot: index must be valid utf-8 of at most 32 bytes")

	// ErrInvalidPoint is returned when a 32-byte value is not a
	// canonical Ed25519 point encoding.
	ErrInvalidPoint = errors.New("ot: invalid curve point encoding")

	// ErrDuplicateIndex is returned when two entries in a single
	// Retrieve call share the same index.
	ErrDuplicateIndex = errors.New("ot: duplicate entry index")

	// ErrNoMatchingCipher is returned when the Receiver's expected
	// response index is absent from the Sender's Ciphers map.
	ErrNoMatchingCipher = errors.New("ot: no ciphertext for requested index")

	// ErrAuthFailed is returned when AEAD authentication fails: the
	// ciphertext was tampered with, sealed under a different key, or
	// the Receiver is decrypting a response from the wrong Sender.
	ErrAuthFailed = errors.New("ot: authentication failed")

	// ErrRandomnessFailure is returned when the OS CSPRNG cannot be
	// read.
	ErrRandomnessFailure = errors.New("ot: failed to read randomness")
)
