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

// Package io feeds files and streams into hash engines.
package io

import (
	"fmt"
	"io"

	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
)

// FileHasher is a HashEngine whose input is a file or stream rather than
// bytes handed to Update.
type FileHasher interface {
	hashengines.HashEngine
}

// FileHasherFactory builds a FileHasher for path.
type FileHasherFactory func(path string) (FileHasher, error)

// feed resets engine and copies r into it. A chunkSize of 0 reads r in one go.
func feed(engine hashengines.StreamingHashEngine, r io.Reader, chunkSize int) error {
	engine.Reset(nil)

	if chunkSize == 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		engine.Update(data)
		return nil
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func validate(contentHasher hashengines.StreamingHashEngine, chunkSize int) error {
	if chunkSize < 0 {
		return fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if contentHasher == nil {
		return fmt.Errorf("content hasher must not be nil")
	}
	return nil
}
