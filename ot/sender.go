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

// Entry is one (index, value) pair a Sender offers in a single
// Retrieve call. Two entries passed to the same Retrieve call must
// have distinct indices.
type Entry struct {
	// Index identifies the entry. It must be valid UTF-8 of at most
	// 32 bytes.
	Index string

	// Value is the entry's plaintext payload.
	Value string
}

// Ciphers is the wire artifact a Retrieve call produces: a mapping
// from response index to an authenticated ciphertext (the random
// 24-byte AEAD nonce prefixed to the sealed payload). When the
// Sender's Config enables response-index concealment, the map's keys
// are raw 32-byte MAC digests rather than the original entry indices.
type Ciphers map[string][]byte

// Sender holds a long-term Oblivious Transfer keypair. A Sender may
// answer any number of Retrieve calls; the only state that changes
// across calls is the opportunistic per-index derivation cache, which
// is safe for concurrent use.
type Sender struct {
	conceal bool

	mu     sync.Mutex
	secret *edwards25519.Scalar // y
	key    *edwards25519.Point  // S = y*B
	u      *edwards25519.Point  // U = y*S

	// cache memoizes indexOTU = indexToScalar(index)*U per index, since
	// it depends only on the Sender's long-term key and is safe to
	// reuse across every Retrieve call that mentions that index.
	cache map[string]*edwards25519.Point
}

// NewSender creates a Sender with a freshly sampled long-term keypair.
func NewSender(cfg Config) (*Sender, error) {
	y, err := scalarRandom()
	if err != nil {
		return nil, err
	}
	s := scalarMultBase(y)
	u := scalarMult(y, s)

	return &Sender{
		conceal: cfg.ConcealResponseIndices,
		secret:  y,
		key:     s,
		u:       u,
		cache:   make(map[string]*edwards25519.Point),
	}, nil
}

// PublishKey returns the Sender's public OT key S. It is idempotent
// and safe to call any number of times.
func (s *Sender) PublishKey() [32]byte {
	return pointBytes(s.key)
}

// Retrieve derives per-entry keys from requestKey and the Sender's
// long-term secret, encrypts every entry's value under its derived
// key, and returns the resulting Ciphers map. It is all-or-nothing:
// on any error no partial result is returned.
//
// The Sender never learns which entry, if any, the Receiver can
// decrypt; it is up to the caller to ensure the entry set is the same
// set the Receiver believes it is choosing among.
func (s *Sender) Retrieve(requestKey [32]byte, entries []Entry) (Ciphers, error) {
	r, err := pointFromBytes(requestKey[:])
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if err := validateIndex(e.Index); err != nil {
			return nil, err
		}
		if _, dup := seen[e.Index]; dup {
			return nil, ErrDuplicateIndex
		}
		seen[e.Index] = struct{}{}
	}

	// T = y*R. With R = indexToScalar(i*)*S + x*B, this equals
	// x*S + indexToScalar(i*)*U (since y*x*B = x*S), so subtracting the
	// entry's indexOTU = indexToScalar(entry.Index)*U cancels out exactly
	// when entry.Index == i*, leaving K = x*S, which the
	// Receiver can compute on its own as x times the Sender's
	// published key.
	t := scalarMult(s.secret, r)

	out := make(Ciphers, len(entries))
	for _, e := range entries {
		indexOTU, err := s.indexOTU(e.Index)
		if err != nil {
			return nil, err
		}

		k := pointSub(t, indexOTU)
		key := pointBytes(k)

		ciphertext, err := aeadSeal(key, []byte(e.Value))
		if err != nil {
			return nil, err
		}

		responseIndex, err := s.responseIndex(e.Index, key)
		if err != nil {
			return nil, err
		}
		out[responseIndex] = ciphertext

		zero(key[:])
	}
	return out, nil
}

// indexOTU returns indexToScalar(index)*U, computing and caching it
// on first use. The cache is keyed by index string rather than by
// mutating caller-supplied Entry values, and is protected by a mutex
// so concurrent Retrieve calls may share one Sender safely.
func (s *Sender) indexOTU(index string) (*edwards25519.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.cache[index]; ok {
		return p, nil
	}
	is, err := indexToScalar(index)
	if err != nil {
		return nil, err
	}
	p := scalarMult(is, s.u)
	s.cache[index] = p
	return p, nil
}

func (s *Sender) responseIndex(index string, key [32]byte) (string, error) {
	if !s.conceal {
		return index, nil
	}
	digest, err := mac([]byte(index), key[:])
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Destroy zeroes the Sender's long-term secret scalar. After Destroy
// the Sender must not be used again; Retrieve will panic on the nil
// secret, while PublishKey still returns the public key.
func (s *Sender) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.secret == nil {
		return
	}
	s.secret.Set(edwards25519.NewScalar())
	s.secret = nil
}
