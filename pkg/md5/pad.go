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

import (
	"encoding/binary"
	"errors"
)

// MaxMessageLen is the longest message, in bytes, whose bit length fits the
// 64-bit length field appended by Pad.
const MaxMessageLen = 1<<61 - 1

// ErrMessageTooLarge reports a message longer than MaxMessageLen. Pad panics
// with it instead of truncating the length field.
var ErrMessageTooLarge = errors.New("md5: message bit length does not fit in 64 bits")

// PaddedLen returns the length of the padded form of an n-byte message: the
// smallest multiple of BlockSize that leaves room for the 0x80 marker and the
// 8-byte length field.
func PaddedLen(n int) int {
	return (n + 8 + BlockSize) &^ (BlockSize - 1)
}

// Pad returns a new slice holding msg, the 0x80 marker, zero fill, and the
// message length in bits as a little-endian uint64 ending on a block boundary.
func Pad(msg []byte) []byte {
	n := len(msg)
	if uint64(n) > MaxMessageLen {
		panic(ErrMessageTooLarge)
	}

	padded := make([]byte, PaddedLen(n))
	copy(padded, msg)
	padded[n] = 0x80
	binary.LittleEndian.PutUint64(padded[len(padded)-8:], uint64(n)<<3)
	return padded
}
