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

package io

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hashengines "github.com/sigstore/md5-digest/pkg/hashing/engines"
	"github.com/sigstore/md5-digest/pkg/hashing/engines/memory"
)

const foxMD5 = "9e107d9d372bb6826bd81d3542a419d6"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestSimpleFileHasher_Compute(t *testing.T) {
	path := writeTemp(t, "The quick brown fox jumps over the lazy dog")

	for _, chunkSize := range []int{0, 1, 7, 64, 8192} {
		engine, err := memory.NewMD5Engine(nil)
		if err != nil {
			t.Fatalf("NewMD5Engine() error = %v", err)
		}

		h, err := NewSimpleFileHasher(path, engine, chunkSize)
		if err != nil {
			t.Fatalf("NewSimpleFileHasher() error = %v", err)
		}

		d, err := h.Compute()
		if err != nil {
			t.Fatalf("Compute(chunkSize=%d) error = %v", chunkSize, err)
		}
		if got := d.Hex(); got != foxMD5 {
			t.Errorf("Compute(chunkSize=%d) = %s, want %s", chunkSize, got, foxMD5)
		}
	}
}

func TestSimpleFileHasher_RecomputeAndSetFile(t *testing.T) {
	engine, _ := memory.NewMD5Engine(nil)
	h, err := NewSimpleFileHasher(writeTemp(t, "abc"), engine, 0)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		d, err := h.Compute()
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if got := d.Hex(); got != "900150983cd24fb0d6963f7d28e17f72" {
			t.Errorf("Compute() #%d = %s", i, got)
		}
	}

	if err := h.SetFile(writeTemp(t, "")); err != nil {
		t.Fatalf("SetFile() error = %v", err)
	}
	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Compute() after SetFile() = %s", got)
	}

	if err := h.SetFile(""); err == nil {
		t.Error("SetFile(\"\") expected error")
	}
}

func TestSimpleFileHasher_MissingFile(t *testing.T) {
	engine, _ := memory.NewMD5Engine(nil)
	h, err := NewSimpleFileHasher(filepath.Join(t.TempDir(), "missing"), engine, 0)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	_, err = h.Compute()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Compute() error = %v, want os.ErrNotExist", err)
	}
}

func TestNewSimpleFileHasher_Validation(t *testing.T) {
	engine, _ := memory.NewMD5Engine(nil)

	tests := []struct {
		name      string
		path      string
		chunkSize int
		nilEngine bool
	}{
		{"empty path", "", 0, false},
		{"negative chunk", "x", -1, false},
		{"nil engine", "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e hashengines.StreamingHashEngine = engine
			if tt.nilEngine {
				e = nil
			}
			if _, err := NewSimpleFileHasher(tt.path, e, tt.chunkSize); err == nil {
				t.Error("NewSimpleFileHasher() expected error")
			}
		})
	}
}

func TestReaderHasher_Compute(t *testing.T) {
	engine, _ := memory.NewMD5Engine(nil)
	h, err := NewReaderHasher(strings.NewReader("The quick brown fox jumps over the lazy dog"), engine, 5)
	if err != nil {
		t.Fatalf("NewReaderHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != foxMD5 {
		t.Errorf("Compute() = %s, want %s", got, foxMD5)
	}
	if h.DigestName() != "md5" || h.DigestSize() != 16 {
		t.Errorf("metadata = %s/%d, want md5/16", h.DigestName(), h.DigestSize())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestReaderHasher_ReadError(t *testing.T) {
	engine, _ := memory.NewMD5Engine(nil)
	h, err := NewReaderHasher(failingReader{}, engine, 16)
	if err != nil {
		t.Fatalf("NewReaderHasher() error = %v", err)
	}
	if _, err := h.Compute(); err == nil {
		t.Error("Compute() expected error from failing reader")
	}
}
