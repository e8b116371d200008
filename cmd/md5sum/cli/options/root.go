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

package options

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sigstore/md5-digest/pkg/logging"
)

// EnvPrefix is the prefix of environment variables that stand in for flags,
// e.g. MD5SUM_LOG_LEVEL for --log-level.
const EnvPrefix = "MD5SUM"

// DefaultTimeout bounds the non-interactive commands.
const DefaultTimeout = 3 * time.Minute

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	// OutputFile redirects command output from stdout to a file.
	OutputFile string
	// LogLevel is one of debug, info, warn, error, silent.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// Timeout bounds the string and file commands.
	Timeout time.Duration
}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags registers the persistent root flags.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write digests to a file instead of stdout")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for non-interactive commands")
}

// GetLogLevel returns the parsed --log-level.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the parsed --log-format.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger builds a stderr logger from the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  o.GetLogLevel(),
		Format: o.GetLogFormat(),
		Output: os.Stderr,
	})
}

// EnvName returns the environment variable consulted for flag name.
func EnvName(name string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ApplyEnv sets every flag of cmd that was not given on the command line from
// its environment variable, when one is set.
func ApplyEnv(cmd *cobra.Command) error {
	var firstErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if firstErr != nil || f.Changed {
			return
		}
		val, ok := os.LookupEnv(EnvName(f.Name))
		if !ok {
			return
		}
		if err := cmd.Flags().Set(f.Name, val); err != nil {
			firstErr = fmt.Errorf("invalid value %q for %s: %w", val, EnvName(f.Name), err)
		}
	})
	return firstErr
}
