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

package digests

import (
	"encoding/hex"
	"fmt"
)

// RenderHex maps each byte of b to two lowercase hexadecimal characters,
// zero-padded, in input order. It accepts any byte sequence; the result is
// always 2*len(b) characters drawn from 0-9a-f.
func RenderHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ParseHex decodes a string produced by RenderHex. Upper-case digits are
// accepted as well.
func ParseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex digest %q: %w", s, err)
	}
	return b, nil
}
