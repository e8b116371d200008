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

package md5

import "hash"

// digest adapts Sum to hash.Hash. Writes are buffered and the whole message
// is hashed when Sum is called, so Sum may be called repeatedly.
type digest struct {
	buf []byte
}

// New returns a hash.Hash computing the MD5 checksum.
func New() hash.Hash {
	return &digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	sum := Sum(d.buf)
	return append(in, sum[:]...)
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }
