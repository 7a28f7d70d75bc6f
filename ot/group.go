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
	"bytes"

	"filippo.io/edwards25519"

	"github.com/chouorlandi/simplestot/internal/otutils"
)

// scalarRandom draws a scalar uniformly from the Ed25519 scalar field.
// filippo.io/edwards25519's wide-reduction constructor requires 64
// bytes of input entropy to reduce modulo the group order; the
// resulting scalar is still a 32-byte canonical value on the wire.
func scalarRandom() (*edwards25519.Scalar, error) {
	seed, err := otutils.RandomBytes(64)
	if err != nil {
		return nil, ErrRandomnessFailure
	}
	defer zero(seed)

	s, err := edwards25519.NewScalar().SetUniformBytes(seed)
	if err != nil {
		// SetUniformBytes only rejects wrong-length input, which
		// cannot happen with a 64-byte seed.
		return nil, err
	}
	return s, nil
}

// indexToScalar interprets an entry index as a scalar: its UTF-8
// encoding is left-padded with zero bytes to 32 bytes and read as a
// little-endian integer, then reduced modulo the Ed25519 group order
// (spec.md §4.1, §6). Reduction, rather than a canonical-or-reject
// decode, is required because most printable UTF-8 indices, once
// padded this way, exceed the group order in their raw 32-byte form;
// Sender and Receiver apply the identical reduction, so the two sides
// always agree on the resulting scalar.
func indexToScalar(index string) (*edwards25519.Scalar, error) {
	if err := validateIndex(index); err != nil {
		return nil, err
	}
	b := []byte(index)

	var wide [64]byte
	copy(wide[32-len(b):32], b)

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, err
	}
	return s, nil
}

// scalarMultBase returns s*B, where B is the Ed25519 base point.
func scalarMultBase(s *edwards25519.Scalar) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().ScalarBaseMult(s)
}

// scalarMult returns s*p.
func scalarMult(s *edwards25519.Scalar, p *edwards25519.Point) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().ScalarMult(s, p)
}

// pointAdd returns p+q.
func pointAdd(p, q *edwards25519.Point) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().Add(p, q)
}

// pointSub returns p-q.
func pointSub(p, q *edwards25519.Point) *edwards25519.Point {
	return edwards25519.NewIdentityPoint().Subtract(p, q)
}

// pointFromBytes decodes a canonical 32-byte Ed25519 point encoding,
// returning ErrInvalidPoint for off-curve encodings (rejected by the
// underlying library) and for non-canonical ones (which the library
// accepts, so they are caught by re-encoding the decoded point).
func pointFromBytes(b []byte) (*edwards25519.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if !bytes.Equal(p.Bytes(), b) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// pointBytes returns the canonical 32-byte encoding of p.
func pointBytes(p *edwards25519.Point) [32]byte {
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// zero overwrites b with zero bytes; used to scrub secret material
// the package holds only transiently (spec.md §5 resource policy).
// It scrubs raw byte buffers only; a Scalar is cleared by setting it
// to the zero scalar (see Sender.Destroy).
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
