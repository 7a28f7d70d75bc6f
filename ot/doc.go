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

// Package ot implements the Chou-Orlandi "Simplest Protocol for
// Oblivious Transfer" (https://eprint.iacr.org/2015/267.pdf) over the
// Ed25519 group, extended with an authenticated-symmetric-encryption
// layer for the transferred entries and an optional transformation
// that conceals response indices from the Receiver.
//
// A Sender holds a long-term OT keypair and, given a Receiver's
// per-round request key and a set of indexed entries, returns a map
// of authenticated ciphertexts such that only the holder of the
// matching per-index secret can decrypt the one entry it requested.
// A Receiver, given the Sender's public key and a chosen index,
// produces that request key and later decrypts exactly the entry it
// asked for; it learns nothing about any other entry, and the Sender
// learns nothing about which index was chosen.
//
// The package is a pure in-memory library: it performs no I/O and
// defines no wire framing. Transport, persistence, and OT extension
// (amortizing many transfers over few base transfers) are left to
// callers.
package ot
