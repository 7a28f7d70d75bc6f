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
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/chouorlandi/simplestot/internal/otutils"
)

const (
	keySize   = 32
	nonceSize = 24
)

// mac computes the Blake2b-256 keyed hash of input under key. It is
// used exclusively to conceal response indices: only a party holding
// key can reproduce the digest that locates an entry's ciphertext.
func mac(input, key []byte) ([]byte, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return nil, err
	}
	h.Write(input)
	return h.Sum(nil), nil
}

// aeadSeal encrypts plaintext under key using XSalsa20-Poly1305, the
// NaCl "secretbox" construction. The returned ciphertext is the
// randomly generated 24-byte nonce prefixed to the sealed box.
func aeadSeal(key [keySize]byte, plaintext []byte) ([]byte, error) {
	raw, err := otutils.RandomBytes(nonceSize)
	if err != nil {
		return nil, ErrRandomnessFailure
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw)

	return secretbox.Seal(nonce[:], plaintext, &nonce, &key), nil
}

// aeadOpen reverses aeadSeal. It returns ErrAuthFailed if the
// ciphertext is too short to contain a nonce, has been tampered with,
// or was sealed under a different key.
func aeadOpen(key [keySize]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSize {
		return nil, ErrAuthFailed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &key)
	if !ok {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}
