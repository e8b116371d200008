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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sigstore/md5-digest/cmd/md5sum/cli/options"
	"github.com/sigstore/md5-digest/pkg/tracing"
)

// String creates the string subcommand, which hashes its arguments.
func String() *cobra.Command {
	o := &options.HashFlags{}

	long := `Hash each TEXT argument as a separate message.

Each argument is hashed as its raw bytes, with no trailing newline, and
printed as MD5("TEXT") = <digest>.`

	cmd := &cobra.Command{
		Use:   "string TEXT...",
		Short: "Hash the given strings.",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ro.NewObservability().Logger
			cfg := o.Config()
			label := strings.ToUpper(cfg.Algorithm())

			attrs := map[string]interface{}{
				"md5sum.command":   "string",
				"md5sum.algorithm": cfg.Algorithm(),
				"md5sum.inputs":    len(args),
			}
			return tracing.Run(cmd.Context(), "String", attrs, func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
				defer cancel()

				for _, text := range args {
					if err := ctx.Err(); err != nil {
						return err
					}
					d, err := cfg.HashBytes([]byte(text))
					if err != nil {
						return err
					}
					logger.Debug("hashed %d bytes", len(text))
					fmt.Fprintf(cmd.OutOrStdout(), "%s(\"%s\") = %s\n", label, text, d.Hex())
				}
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
