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

package io

import (
	"fmt"
	"io"

	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
)

var _ FileHasher = (*ReaderHasher)(nil)

// ReaderHasher hashes everything readable from an io.Reader, such as stdin.
// The reader is drained by the first Compute call.
type ReaderHasher struct {
	r             io.Reader
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewReaderHasher returns a hasher over r.
func NewReaderHasher(r io.Reader, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*ReaderHasher, error) {
	if r == nil {
		return nil, fmt.Errorf("reader must not be nil")
	}
	if err := validate(contentHasher, chunkSize); err != nil {
		return nil, err
	}

	return &ReaderHasher{
		r:             r,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// DigestName is delegated to the content hasher.
func (h *ReaderHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the content hasher.
func (h *ReaderHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute drains the reader and returns the digest of what it produced.
func (h *ReaderHasher) Compute() (digests.Digest, error) {
	if err := feed(h.contentHasher, h.r, h.chunkSize); err != nil {
		return digests.Digest{}, fmt.Errorf("read input: %w", err)
	}
	return h.contentHasher.Compute()
}
