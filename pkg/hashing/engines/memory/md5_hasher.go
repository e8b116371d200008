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

	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
	"github.com/sigstore/md5-digest/pkg/md5"
)

// MD5 is the registry name of the MD5 engine.
const MD5 = "md5"

func init() {
	hashengines.MustRegister(MD5, func() (hashengines.StreamingHashEngine, error) {
		return NewMD5Engine(nil)
	})
}

// MD5Engine hashes its buffered input with the in-tree MD5 implementation.
type MD5Engine = GenericHashEngine

// NewMD5Engine creates an MD5 engine. initialData, if non-empty, becomes the
// start of the message.
func NewMD5Engine(initialData []byte) (*MD5Engine, error) {
	return NewGenericHashEngine(
		MD5,
		md5.Size,
		func() (hash.Hash, error) {
			return md5.New(), nil
		},
		initialData,
	)
}
