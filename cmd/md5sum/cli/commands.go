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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/sigstore/md5-digest/cmd/md5sum/cli/options"
)

var (
	ro = &options.RootOptions{}
)

// New returns the md5sum root command. Without a subcommand it starts the
// interactive session.
func New() *cobra.Command {
	var out *os.File
	interactiveOpts := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "md5sum",
		Short: "Compute MD5 digests of messages, files and stdin.",
		Long: `Compute MD5 digests of messages, files and stdin.

Run without a subcommand to enter the interactive session, which reads one
message per line and prints MD5("<message>") = <digest> for each.

MD5 is not collision resistant; do not use it for security.`,
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := options.ApplyEnv(cmd); err != nil {
				return err
			}

			if ro.OutputFile != "" {
				var err error
				out, err = os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				cmd.SetOut(out)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if out != nil {
				_ = out.Close()
				out = nil
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, interactiveOpts)
		},
	}
	ro.AddFlags(cmd)
	interactiveOpts.AddFlags(cmd)

	cmd.AddCommand(Interactive())
	cmd.AddCommand(String())
	cmd.AddCommand(File())
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
