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

package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sigstore/md5-digest/cmd/md5sum/cli/options"
	"github.com/sigstore/md5-digest/internal/session"
	"github.com/sigstore/md5-digest/pkg/tracing"
)

func runInteractive(cmd *cobra.Command, o *options.InteractiveOptions) error {
	logger := ro.NewObservability().Logger
	cfg := o.Config()

	attrs := map[string]interface{}{
		"md5sum.command":   "interactive",
		"md5sum.algorithm": cfg.Algorithm(),
		"md5sum.no_prompt": o.NoPrompt,
	}
	return tracing.Run(cmd.Context(), "Interactive", attrs, func(ctx context.Context) error {
		s, err := session.New(session.Options{
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Label:  strings.ToUpper(cfg.Algorithm()),
			Hash:   cfg.HashBytes,
			Quiet:  o.NoPrompt,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		return s.Run(ctx)
	})
}

// Interactive creates the interactive subcommand.
func Interactive() *cobra.Command {
	o := &options.InteractiveOptions{}

	long := `Hash messages typed one per line.

After each digest you are asked whether to hash another message; answer y or
n. The session also ends when input is closed (Ctrl-D) or on Ctrl-C.`

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Hash messages typed one per line (default).",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, o)
		},
	}

	o.AddFlags(cmd)
	return cmd
}
