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

	"github.com/spf13/cobra"

	"github.com/sigstore/md5-digest/cmd/md5sum/cli/options"
	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	"github.com/sigstore/md5-digest/pkg/tracing"
	"github.com/sigstore/md5-digest/pkg/utils"
)

// stdinPath stands for standard input in the file list.
const stdinPath = "-"

// File creates the file subcommand. Output matches coreutils md5sum.
func File() *cobra.Command {
	o := &options.HashFlags{}

	long := `Hash the content of each FILE.

Prints "<digest>  <path>" per file. A path of "-" reads standard input.
Files that cannot be read are reported and skipped; the command then exits
with status 1.`

	cmd := &cobra.Command{
		Use:   "file FILE...",
		Short: "Hash the given files.",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ro.NewObservability().Logger
			cfg := o.Config()

			attrs := map[string]interface{}{
				"md5sum.command":    "file",
				"md5sum.algorithm":  cfg.Algorithm(),
				"md5sum.inputs":     len(args),
				"md5sum.chunk_size": o.ChunkSize,
			}
			return tracing.Run(cmd.Context(), "File", attrs, func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
				defer cancel()

				failed := 0
				for _, path := range args {
					if err := ctx.Err(); err != nil {
						return err
					}

					var (
						d   digests.Digest
						err error
					)
					switch {
					case path == stdinPath:
						d, err = cfg.HashReader(cmd.InOrStdin())
					default:
						if err = utils.ValidateFileExists("input", path); err == nil {
							d, err = cfg.HashFile(path)
						}
					}
					if err != nil {
						logger.WithField("path", path).Error("%v", err)
						failed++
						continue
					}

					logger.WithField("path", path).Debug("hashed file")
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Hex(), path)
				}

				if failed > 0 {
					return partialFailure(failed, len(args))
				}
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
