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
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPaddedLen_BlockBoundaries(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 64},
		{1, 64},
		{55, 64},
		{56, 128},
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
	}

	for _, tt := range tests {
		if got := PaddedLen(tt.n); got != tt.want {
			t.Errorf("PaddedLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPad_LengthInvariant(t *testing.T) {
	for n := 0; n <= 300; n++ {
		padded := Pad(make([]byte, n))
		if len(padded)%BlockSize != 0 {
			t.Fatalf("len(Pad(%d bytes)) = %d, not a multiple of %d", n, len(padded), BlockSize)
		}
		if len(padded) < n+9 {
			t.Fatalf("len(Pad(%d bytes)) = %d, want >= %d", n, len(padded), n+9)
		}
		if len(padded)-BlockSize >= n+9 {
			t.Fatalf("len(Pad(%d bytes)) = %d is not the smallest block multiple", n, len(padded))
		}
	}
}

func TestPad_Layout(t *testing.T) {
	msg := []byte("abc")
	padded := Pad(msg)

	if len(padded) != 64 {
		t.Fatalf("len(Pad(%q)) = %d, want 64", msg, len(padded))
	}
	if !bytes.Equal(padded[:3], msg) {
		t.Errorf("message prefix = %x, want %x", padded[:3], msg)
	}
	if padded[3] != 0x80 {
		t.Errorf("marker byte = %#x, want 0x80", padded[3])
	}
	for i := 4; i < 56; i++ {
		if padded[i] != 0 {
			t.Fatalf("fill byte %d = %#x, want 0", i, padded[i])
		}
	}
	if got := binary.LittleEndian.Uint64(padded[56:]); got != 24 {
		t.Errorf("length field = %d, want 24", got)
	}
	// Least significant byte first.
	if padded[56] != 0x18 {
		t.Errorf("first length byte = %#x, want 0x18", padded[56])
	}
}

func TestPad_LengthFieldMultiByte(t *testing.T) {
	msg := make([]byte, 1000)
	padded := Pad(msg)

	if got := binary.LittleEndian.Uint64(padded[len(padded)-8:]); got != 8000 {
		t.Errorf("length field = %d, want 8000", got)
	}
	if padded[len(padded)-8] != 0x40 || padded[len(padded)-7] != 0x1f {
		t.Errorf("length bytes = %x, want 401f000000000000", padded[len(padded)-8:])
	}
}

func TestPad_DoesNotAliasInput(t *testing.T) {
	msg := make([]byte, 3, 64)
	copy(msg, "abc")
	padded := Pad(msg)
	padded[0] = 'z'
	if msg[0] != 'a' {
		t.Error("Pad() returned a slice sharing memory with its input")
	}
}
