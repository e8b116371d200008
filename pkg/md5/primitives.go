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

import "math/bits"

// rotl rotates x left by n bits.
func rotl(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n))
}

// mix is the nonlinear function of round i, chosen by the quartile i falls in.
func mix(i int, b, c, d uint32) uint32 {
	switch i / 16 {
	case 0:
		return (b & c) | (^b & d)
	case 1:
		return (b & d) | (c &^ d)
	case 2:
		return b ^ c ^ d
	default:
		return c ^ (b | ^d)
	}
}

// wordIndex selects which of the 16 block words feeds round i.
func wordIndex(i int) int {
	switch i / 16 {
	case 0:
		return i
	case 1:
		return (5*i + 1) % 16
	case 2:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}
