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
	"github.com/spf13/cobra"

	"github.com/sigstore/md5-digest/pkg/hashing"
	"github.com/sigstore/md5-digest/pkg/hashing/engines/memory"
)

// FlagAdder is implemented by every flag group.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// HashFlags selects the engine and read strategy.
type HashFlags struct {
	// Algorithm is a registered engine name.
	Algorithm string
	// ChunkSize is the read buffer for files and stdin; 0 reads at once.
	ChunkSize int
}

// AddFlags adds the hashing flags.
func (o *HashFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Algorithm, "algorithm", memory.MD5, "Hash algorithm to use.")
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", hashing.DefaultChunkSize, "Read buffer size in bytes; 0 reads each input at once.")
}

// Config converts the flags into a hashing.Config.
func (o *HashFlags) Config() *hashing.Config {
	return hashing.NewConfig().
		SetAlgorithm(o.Algorithm).
		SetChunkSize(o.ChunkSize)
}

// InteractiveOptions configures the interactive session.
type InteractiveOptions struct {
	HashFlags
	// NoPrompt hides the prompts, which is useful when piping input.
	NoPrompt bool
}

// AddFlags adds the interactive flags.
func (o *InteractiveOptions) AddFlags(cmd *cobra.Command) {
	o.HashFlags.AddFlags(cmd)
	cmd.Flags().BoolVar(&o.NoPrompt, "no-prompt", false, "Do not print prompts; only digest lines are written.")
}

// AddAllFlags registers several flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
