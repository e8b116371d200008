// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests holds the Digest value returned by hash engines and the
// hex rendering used to display it.
package digests

import (
	"bytes"
	"fmt"
)

// Digest is a computed message digest tagged with the algorithm that produced
// it. Its fields are unexported and every accessor copies, so a Digest can be
// shared freely once built.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest copies value and returns a Digest for the given algorithm.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// FromHex parses a hex string into a Digest for algorithm.
func FromHex(algorithm, s string) (Digest, error) {
	value, err := ParseHex(s)
	if err != nil {
		return Digest{}, err
	}
	return Digest{algorithm: algorithm, value: value}, nil
}

// Algorithm returns the name of the algorithm that produced the digest.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hex rendering of the digest bytes.
func (d Digest) Hex() string {
	return RenderHex(d.value)
}

// Size returns the digest length in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// String formats the digest as "algorithm:hex".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests come from the same algorithm and hold
// the same bytes.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
