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

// Package logging is the leveled logger used by md5sum. Diagnostics go to
// stderr by default so that digests written to stdout can be piped.
package logging

import "strings"

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelSilent suppresses all output.
	LevelSilent
)

var levelNames = map[LogLevel]string{
	LevelDebug:  "debug",
	LevelInfo:   "info",
	LevelWarn:   "warn",
	LevelError:  "error",
	LevelSilent: "silent",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel maps a flag value to a LogLevel, defaulting to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat selects the Formatter built by NewLoggerWithOptions.
type LogFormat int

const (
	FormatText LogFormat = iota
	FormatJSON
)

func (f LogFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseLogFormat maps a flag value to a LogFormat, defaulting to FormatText.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Logger is the logging interface accepted throughout the module.
type Logger interface {
	Debug(format string, args ...interface{})
	Debugln(msg string)
	Info(format string, args ...interface{})
	Infoln(msg string)
	Warn(format string, args ...interface{})
	Warnln(msg string)
	Error(format string, args ...interface{})
	Errorln(msg string)

	// GetLevel returns the minimum level that is written.
	GetLevel() LogLevel
	// Silent reports whether debug output is suppressed.
	Silent() bool

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// Default returns an info-level text logger on stderr.
func Default() Logger {
	return NewLogger(false)
}

// EnsureLogger returns l, or Default() when l is nil.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
