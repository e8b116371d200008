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

// Package hashengines defines the engine abstraction the CLI and file hashers
// drive, and a registry mapping algorithm names to engine factories.
//
// Engines accept input through Update but hash the complete message only when
// Compute is called.
package hashengines

import (
	"github.com/sigstore/md5-digest/pkg/hashing/digests"
)

// HashEngine produces a digest over the data it has been given.
type HashEngine interface {
	// Compute hashes everything supplied so far and returns the digest.
	// It does not reset the engine.
	Compute() (digests.Digest, error)

	// DigestName returns the algorithm name recorded in computed digests.
	DigestName() string

	// DigestSize returns the length in bytes of computed digests.
	DigestSize() int
}

// Streaming lets callers hand data to an engine in pieces.
type Streaming interface {
	// Update appends data to the message.
	Update(data []byte)

	// Reset discards the message and starts a new one seeded with data.
	Reset(data []byte)
}

// StreamingHashEngine is a HashEngine that also accepts data piecewise.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
