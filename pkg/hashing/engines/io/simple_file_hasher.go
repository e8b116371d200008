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
	"os"

	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
)

var _ FileHasher = (*SimpleFileHasher)(nil)

// SimpleFileHasher hashes the whole content of one file.
type SimpleFileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

// NewSimpleFileHasher returns a hasher for filePath.
//
//   - contentHasher: engine that receives the file bytes
//   - chunkSize: read buffer size; 0 reads the file in one call
func NewSimpleFileHasher(
	filePath string,
	contentHasher hashengines.StreamingHashEngine,
	chunkSize int,
) (*SimpleFileHasher, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}
	if err := validate(contentHasher, chunkSize); err != nil {
		return nil, err
	}

	return &SimpleFileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// SetFile changes the file hashed by the next Compute call.
func (h *SimpleFileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName is delegated to the content hasher.
func (h *SimpleFileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the content hasher.
func (h *SimpleFileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute reads the file and returns its digest.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	//nolint:errcheck
	defer f.Close()

	if err := feed(h.contentHasher, f, h.chunkSize); err != nil {
		return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest of %q: %w", h.filePath, err)
	}
	return d, nil
}
