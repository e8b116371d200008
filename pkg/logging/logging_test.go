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

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level LogLevel, format LogFormat) *DefaultLogger {
	return NewLoggerWithOptions(LoggerOptions{
		Level:  level,
		Format: format,
		Output: buf,
	})
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		verbose       bool
		wantSilent    bool
		expectedLevel LogLevel
	}{
		{"verbose mode", true, false, LevelDebug},
		{"quiet mode", false, true, LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.verbose)
			if logger.Silent() != tt.wantSilent {
				t.Errorf("NewLogger(%v).Silent() = %v, want %v", tt.verbose, logger.Silent(), tt.wantSilent)
			}
			if logger.GetLevel() != tt.expectedLevel {
				t.Errorf("NewLogger(%v).GetLevel() = %v, want %v", tt.verbose, logger.GetLevel(), tt.expectedLevel)
			}
			if logger.out != os.Stderr {
				t.Error("NewLogger() should write to os.Stderr")
			}
		})
	}
}

func TestNewLoggerWithOptions_DefaultsToStderr(t *testing.T) {
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelInfo})
	if logger.out != os.Stderr {
		t.Error("NewLoggerWithOptions() without Output should write to os.Stderr")
	}
	if _, ok := logger.formatter.(*TextFormatter); !ok {
		t.Errorf("Expected TextFormatter, got %T", logger.formatter)
	}
}

func TestNewLoggerWithOptions_CustomFormatterWins(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOptions(LoggerOptions{
		Level:     LevelDebug,
		Format:    FormatJSON,
		Formatter: &TextFormatter{ShowLevel: true},
		Output:    &buf,
	})
	logger.Info("test")

	if got := buf.String(); got != "[INFO] test\n" {
		t.Errorf("output = %q, want %q", got, "[INFO] test\n")
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  string
	}{
		{"debug shows all", LevelDebug, "d\ni\nw\ne\n"},
		{"info hides debug", LevelInfo, "i\nw\ne\n"},
		{"warn", LevelWarn, "w\ne\n"},
		{"error", LevelError, "e\n"},
		{"silent", LevelSilent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, tt.level, FormatText)
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLoggerLnMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText)

	logger.Debugln("debug line")
	logger.Infoln("info line")
	logger.Warnln("100% sure")
	logger.Errorln("error line")

	want := "debug line\ninfo line\n100% sure\nerror line\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoggerFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)
	logger.Info("hashed %d bytes of %s", 43, "stdin")

	if want := "hashed 43 bytes of stdin\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)

	logger.Debug("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debug("shown")

	if buf.String() != "shown\n" {
		t.Errorf("output = %q, want %q", buf.String(), "shown\n")
	}
}

func TestLoggerIsLevelEnabled(t *testing.T) {
	logger := NewLoggerWithOptions(LoggerOptions{Level: LevelWarn})

	tests := []struct {
		level LogLevel
		want  bool
	}{
		{LevelDebug, false},
		{LevelInfo, false},
		{LevelWarn, true},
		{LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := logger.IsLevelEnabled(tt.level); got != tt.want {
				t.Errorf("IsLevelEnabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)

	logger.WithFields(map[string]interface{}{
		"zeta":  1,
		"alpha": "a",
		"mid":   true,
	}).Info("digest")

	want := "digest {alpha=a, mid=true, zeta=1}\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Timestamp(t *testing.T) {
	f := &TextFormatter{TimeFormat: "2006", ShowLevel: true}
	data, err := f.Format(LogEntry{Level: LevelWarn, Message: "m"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := string(data); got != "0001 [WARN] m\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)
	logger.WithField("algorithm", "md5").Info("computed")

	var entry jsonEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "info" {
		t.Errorf("JSON level = %q, want info", entry.Level)
	}
	if entry.Message != "computed" {
		t.Errorf("JSON message = %q, want computed", entry.Message)
	}
	if entry.Timestamp == "" {
		t.Error("JSON timestamp should not be empty")
	}
	if entry.Fields["algorithm"] != "md5" {
		t.Errorf("JSON fields = %v", entry.Fields)
	}
}

func TestJSONFormatter_UnmarshalableField(t *testing.T) {
	f := &JSONFormatter{}
	data, err := f.Format(LogEntry{
		Level:   LevelError,
		Message: "bad",
		Fields:  map[string]interface{}{"ch": make(chan int)},
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(data), "json marshal failed") {
		t.Errorf("Format() = %q, want fallback entry", data)
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := newTestLogger(&parentBuf, LevelDebug, FormatText)

	child := parent.WithField("key", "value")
	child.(*DefaultLogger).SetOutput(&childBuf)

	parent.Info("parent")
	child.Info("child")

	if parentBuf.String() != "parent\n" {
		t.Errorf("parent output = %q", parentBuf.String())
	}
	if childBuf.String() != "child {key=value}\n" {
		t.Errorf("child output = %q", childBuf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"  DEBUG ", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"silent", LevelSilent},
		{"none", LevelSilent},
		{"off", LevelSilent},
		{"invalid", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input string
		want  LogFormat
	}{
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"text", FormatText},
		{"plain", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogFormat(tt.input); got != tt.want {
				t.Errorf("ParseLogFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelAndFormatStrings(t *testing.T) {
	if LogLevel(99).String() != "unknown" {
		t.Errorf("LogLevel(99).String() = %q", LogLevel(99).String())
	}
	if LevelSilent.String() != "silent" {
		t.Errorf("LevelSilent.String() = %q", LevelSilent.String())
	}
	if FormatJSON.String() != "json" || LogFormat(7).String() != "unknown" {
		t.Error("LogFormat.String() mismatch")
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Fatal("EnsureLogger(nil) returned nil")
	}
	custom := NewLogger(true)
	if EnsureLogger(custom) != custom {
		t.Error("EnsureLogger should return the provided logger when non-nil")
	}
	if !Default().Silent() {
		t.Error("Default() should not log debug output")
	}
}
