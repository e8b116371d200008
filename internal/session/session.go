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

// Package session runs the interactive read-hash-repeat loop behind
// "md5sum interactive".
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sigstore/md5-digest/pkg/hashing/digests"
	"github.com/sigstore/md5-digest/pkg/logging"
)

const (
	messagePrompt  = "Enter a message to be hashed (Ctrl-C to exit): "
	continuePrompt = "Do you want to hash another message? (y/n): "
	invalidAnswer  = "Invalid input. Please enter 'y' for 'yes' or 'n' for 'no'."
)

// HashFunc computes the digest of one message.
type HashFunc func(msg []byte) (digests.Digest, error)

// Options configures a Session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Label names the algorithm in result lines, e.g. "MD5".
	Label string
	Hash  HashFunc
	// Quiet suppresses the prompts; results are still printed.
	Quiet  bool
	Logger logging.Logger
}

// Session prompts for messages and prints their digests until the user
// declines to continue or input ends.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	label  string
	hash   HashFunc
	quiet  bool
	logger logging.Logger
}

// New validates opts and returns a Session.
func New(opts Options) (*Session, error) {
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("session needs both an input and an output")
	}
	if opts.Hash == nil {
		return nil, errors.New("session needs a hash function")
	}
	label := opts.Label
	if label == "" {
		label = "MD5"
	}

	return &Session{
		in:     bufio.NewReader(opts.In),
		out:    opts.Out,
		label:  label,
		hash:   opts.Hash,
		quiet:  opts.Quiet,
		logger: logging.EnsureLogger(opts.Logger),
	}, nil
}

// Run loops until the user answers "n", input is exhausted, or ctx is done.
// End of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	for count := 1; ; count++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.prompt(messagePrompt)
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed after %d message(s)", count-1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		d, err := s.hash([]byte(line))
		if err != nil {
			return fmt.Errorf("hash message: %w", err)
		}
		s.logger.WithField("bytes", len(line)).Debug("hashed message %d", count)
		if _, err := fmt.Fprintf(s.out, "%s(\"%s\") = %s\n", s.label, line, d.Hex()); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		again, err := s.askContinue()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// askContinue repeats the question until it gets y/Y or n/N. End of input
// counts as "no".
func (s *Session) askContinue() (bool, error) {
	for {
		s.prompt(continuePrompt)
		answer, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch answer {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
		if _, err := fmt.Fprintln(s.out, invalidAnswer); err != nil {
			return false, fmt.Errorf("write prompt: %w", err)
		}
	}
}

// readLine returns the next line without its line ending. A final line with
// no newline is returned normally; io.EOF is only reported once nothing is
// left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *Session) prompt(text string) {
	if !s.quiet {
		_, _ = io.WriteString(s.out, text)
	}
}
