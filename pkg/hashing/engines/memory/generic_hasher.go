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

package memory

import (
	"hash"

	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates the hash.Hash backing an engine.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine exposes any hash.Hash as a StreamingHashEngine.
type GenericHashEngine struct {
	name string
	size int
	h    hash.Hash
}

// NewGenericHashEngine builds an engine named name around the hash returned
// by factory. initialData, if non-empty, is written straight away.
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name: name,
		size: size,
		h:    h,
	}
	engine.Update(initialData)
	return engine, nil
}

// Update appends data to the message.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		// hash.Hash.Write never returns an error.
		_, _ = e.h.Write(data)
	}
}

// Reset discards the message and seeds a new one with data.
func (e *GenericHashEngine) Reset(data []byte) {
	e.h.Reset()
	e.Update(data)
}

// Compute returns the digest of the message written so far.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.name, e.h.Sum(nil)), nil
}

// DigestName returns the algorithm name.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the digest length in bytes.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
