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

import (
	"sync"

	"filippo.io/edwards25519"
)

// Receiver holds the Sender's public key and accumulates one shared
// secret per index it has requested. A Receiver moves through the
// states Empty -> Pending(one or more indices) -> Resolved: BuildRequest
// may be called any number of times, each for a distinct index, before
// DecryptResponse consumes every pending secret in one call.
type Receiver struct {
	conceal bool

	senderKey *edwards25519.Point

	mu        sync.Mutex
	otSecrets map[string][32]byte // index -> Q = x*S
}

// NewReceiver prepares a Receiver to request entries from a Sender
// whose public OT key is senderKey.
func NewReceiver(cfg Config, senderKey [32]byte) (*Receiver, error) {
	s, err := pointFromBytes(senderKey[:])
	if err != nil {
		return nil, err
	}

	return &Receiver{
		conceal:   cfg.ConcealResponseIndices,
		senderKey: s,
		otSecrets: make(map[string][32]byte),
	}, nil
}

// BuildRequest samples fresh randomness x, computes the request point
// R = indexToScalar(entryIndex)*S + x*B, and stores the shared secret
// Q = x*S under entryIndex for later consumption by DecryptResponse.
// Each call is independently randomized and may be for a different
// index; calling it twice for the same index overwrites that index's
// stored secret with a freshly randomized one.
func (r *Receiver) BuildRequest(entryIndex string) ([32]byte, error) {
	if err := validateIndex(entryIndex); err != nil {
		return [32]byte{}, err
	}

	is, err := indexToScalar(entryIndex)
	if err != nil {
		return [32]byte{}, err
	}

	x, err := scalarRandom()
	if err != nil {
		return [32]byte{}, err
	}
	defer func() {
		b := x.Bytes()
		zero(b)
	}()

	q := scalarMult(x, r.senderKey)
	xb := scalarMultBase(x)
	req := pointAdd(scalarMult(is, r.senderKey), xb)

	r.mu.Lock()
	r.otSecrets[entryIndex] = pointBytes(q)
	r.mu.Unlock()

	return pointBytes(req), nil
}

// DecryptResponse locates and decrypts every entry this Receiver has
// requested via BuildRequest within ciphers, the Ciphers map returned
// by the Sender's Retrieve call for the same batch of requests. It is
// all-or-nothing: on any error no partial result is returned. On
// success, every consumed index's secret is evicted from otSecrets.
func (r *Receiver) DecryptResponse(ciphers Ciphers) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]string, len(r.otSecrets))
	for index, key := range r.otSecrets {
		responseIndex, err := r.responseIndex(index, key)
		if err != nil {
			return nil, err
		}

		ciphertext, ok := ciphers[responseIndex]
		if !ok {
			return nil, ErrNoMatchingCipher
		}

		plaintext, err := aeadOpen(key, ciphertext)
		if err != nil {
			return nil, err
		}
		result[index] = string(plaintext)
	}

	for index, key := range r.otSecrets {
		key := key
		zero(key[:])
		delete(r.otSecrets, index)
	}
	return result, nil
}

func (r *Receiver) responseIndex(index string, key [32]byte) (string, error) {
	if !r.conceal {
		return index, nil
	}
	digest, err := mac([]byte(index), key[:])
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Destroy zeroes every secret this Receiver is still holding. After
// Destroy the Receiver must not be used again.
func (r *Receiver) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for index, key := range r.otSecrets {
		key := key
		zero(key[:])
		delete(r.otSecrets, index)
	}
}
