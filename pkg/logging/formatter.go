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
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// LogEntry is one message handed to a Formatter.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
	Fields    map[string]interface{}
}

// Formatter renders a LogEntry as a single line, newline included.
type Formatter interface {
	Format(entry LogEntry) ([]byte, error)
}

// TextFormatter writes "[time] [LEVEL] message {k=v, ...}". Fields are sorted
// by key.
type TextFormatter struct {
	// TimeFormat is the layout for timestamps. Empty disables them.
	TimeFormat string
	// ShowLevel prefixes the message with the upper-cased level.
	ShowLevel bool
}

func (f *TextFormatter) Format(entry LogEntry) ([]byte, error) {
	var sb strings.Builder

	if f.TimeFormat != "" {
		sb.WriteString(entry.Timestamp.Format(f.TimeFormat))
		sb.WriteByte(' ')
	}
	if f.ShowLevel {
		fmt.Fprintf(&sb, "[%s] ", strings.ToUpper(entry.Level.String()))
	}
	sb.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, entry.Fields[k])
		}
		sb.WriteByte('}')
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

type jsonEntry struct {
	Timestamp string                 `json:"timestamp,omitempty"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// JSONFormatter writes one JSON object per line.
type JSONFormatter struct {
	// TimeFormat defaults to time.RFC3339.
	TimeFormat string
}

func (f *JSONFormatter) Format(entry LogEntry) ([]byte, error) {
	timeFmt := f.TimeFormat
	if timeFmt == "" {
		timeFmt = time.RFC3339
	}

	je := jsonEntry{
		Timestamp: entry.Timestamp.Format(timeFmt),
		Level:     entry.Level.String(),
		Message:   entry.Message,
	}
	if len(entry.Fields) > 0 {
		je.Fields = entry.Fields
	}

	data, err := json.Marshal(je)
	if err != nil {
		// Unmarshalable field values still produce a line.
		fallback := fmt.Sprintf(`{"level":%q,"message":%q,"error":"json marshal failed"}`+"\n",
			entry.Level.String(), entry.Message)
		return []byte(fallback), nil
	}
	return append(data, '\n'), nil
}
