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

// Config controls protocol behaviour that both parties must agree on
// out of band; per spec.md's design notes, it replaces a module-level
// flag with a field set once at construction time and left immutable
// thereafter. It is never negotiated on the wire: a Sender and
// Receiver built with mismatched Config values will fail to agree on
// response indices.
type Config struct {
	// ConcealResponseIndices, when true, replaces each entry's plain
	// index in the Sender's Ciphers map with a MAC of the index keyed
	// by that entry's derived per-entry key, so a Receiver holding
	// only its own chosen index's key cannot locate, let alone
	// decrypt, any other entry's ciphertext.
	ConcealResponseIndices bool
}

// DefaultConfig returns the recommended configuration: response-index
// concealment enabled.
func DefaultConfig() Config {
	return Config{ConcealResponseIndices: true}
}
