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

// Package md5 implements the MD5 message digest defined in RFC 1321.
//
// MD5 is cryptographically broken and must not be used where collision
// resistance matters. The engine is one-shot: Sum consumes the whole message,
// pads it, and folds the compression function over every 64-byte block.
package md5

import "encoding/binary"

// Size is the length of an MD5 digest in bytes.
const Size = 16

// BlockSize is the length of one compression block in bytes.
const BlockSize = 64

// Initial hash state words A, B, C and D.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// Sum returns the MD5 digest of msg.
//
// Every call starts from the published initial state, so Sum is safe for
// concurrent use and never carries state between messages. msg is only read.
func Sum(msg []byte) [Size]byte {
	s := [4]uint32{init0, init1, init2, init3}

	padded := Pad(msg)
	for off := 0; off < len(padded); off += BlockSize {
		compress(&s, padded[off:off+BlockSize])
	}

	var out [Size]byte
	for i, w := range s {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}
