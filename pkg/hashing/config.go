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

// Package hashing ties engines, file hashers and digests together behind a
// small builder-style Config.
package hashing

import (
	"fmt"
	"io"

	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
	hashio "github.com/sigstore/md5-digest/pkg/hashing/engines/io"
	"github.com/sigstore/md5-digest/pkg/hashing/engines/memory"
)

// DefaultChunkSize is the read buffer used for files and streams.
const DefaultChunkSize = 8192

// Config selects the algorithm and read strategy for hashing.
type Config struct {
	// Hash algorithm registered with hashengines (e.g. "md5")
	hashAlgorithm string

	// Chunk size for file reading (0 = read all at once)
	chunkSize int
}

// NewConfig returns a Config using MD5 and DefaultChunkSize.
func NewConfig() *Config {
	return &Config{
		hashAlgorithm: memory.MD5,
		chunkSize:     DefaultChunkSize,
	}
}

// SetAlgorithm selects the registered engine used by the Hash methods.
func (c *Config) SetAlgorithm(algorithm string) *Config {
	c.hashAlgorithm = algorithm
	return c
}

// SetChunkSize sets the read buffer size; 0 reads inputs in one call.
func (c *Config) SetChunkSize(size int) *Config {
	c.chunkSize = size
	return c
}

// Algorithm returns the configured algorithm name.
func (c *Config) Algorithm() string {
	return c.hashAlgorithm
}

// HashBytes returns the digest of msg.
func (c *Config) HashBytes(msg []byte) (digests.Digest, error) {
	engine, err := c.createContentHasher()
	if err != nil {
		return digests.Digest{}, err
	}
	engine.Update(msg)
	return engine.Compute()
}

// HashFile returns the digest of the file at path.
func (c *Config) HashFile(path string) (digests.Digest, error) {
	engine, err := c.createContentHasher()
	if err != nil {
		return digests.Digest{}, err
	}

	hasher, err := hashio.NewSimpleFileHasher(path, engine, c.chunkSize)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to create hasher for %s: %w", path, err)
	}
	return hasher.Compute()
}

// HashReader drains r and returns the digest of its content.
func (c *Config) HashReader(r io.Reader) (digests.Digest, error) {
	engine, err := c.createContentHasher()
	if err != nil {
		return digests.Digest{}, err
	}

	hasher, err := hashio.NewReaderHasher(r, engine, c.chunkSize)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to create reader hasher: %w", err)
	}
	return hasher.Compute()
}

func (c *Config) createContentHasher() (hashengines.StreamingHashEngine, error) {
	engine, err := hashengines.Create(c.hashAlgorithm)
	if err != nil {
		return nil, err
	}
	return engine, nil
}
