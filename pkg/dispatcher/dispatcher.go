// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatcher

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
)

// Target receives parsed commands.
type Target interface {
	Log(ctx context.Context, message string, l level.Level) error
	SetThreshold(l level.Level) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets the console streams for echoes and local errors.
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Dispatcher) {
		if out != nil {
			d.out = out
		}
		if errOut != nil {
			d.errOut = errOut
		}
	}
}

// WithQuiet suppresses console echoes. Local errors are still printed.
func WithQuiet(quiet bool) Option {
	return func(d *Dispatcher) {
		d.quiet = quiet
	}
}

// Dispatcher reads the interactive line protocol and forwards each line to
// a Target.
type Dispatcher struct {
	target       Target
	defaultLevel level.Level
	out          io.Writer
	errOut       io.Writer
	quiet        bool
	exited       atomic.Bool
}

// New returns a dispatcher that logs unprefixed lines at defaultLevel.
func New(target Target, defaultLevel level.Level, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		target:       target,
		defaultLevel: defaultLevel,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PrintBanner writes the interactive usage hint.
func (d *Dispatcher) PrintBanner() {
	if d.quiet {
		return
	}
	fmt.Fprintln(d.out, "logq is running.")
	fmt.Fprintln(d.out, "Enter messages in the format: [LEVEL] message")
	fmt.Fprintf(d.out, "If LEVEL is omitted, the default level '%s' will be used.\n", d.defaultLevel)
	fmt.Fprintf(d.out, "Use '%s <LEVEL>' to change the threshold (%s).\n",
		SetLevelCommand, strings.Join(level.Names(), ", "))
	fmt.Fprintf(d.out, "Type '%s' to quit.\n", ExitCommand)
}

// Run handles lines from r until "exit", end of input or ctx end. It
// returns nil for exit and EOF. Lines longer than defaults.MaxLineBytes are
// reported and skipped.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		line, n, tooLong, err := readLine(br, defaults.MaxLineBytes)
		if n > 0 {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if tooLong {
				fmt.Fprintf(d.errOut, "Error: line of %d bytes exceeds the %d byte limit and was ignored.\n",
					n, defaults.MaxLineBytes)
				slog.Warn("oversized input line ignored", "bytes", n, "limit", defaults.MaxLineBytes)
			} else {
				stop, herr := d.Handle(ctx, line)
				if herr != nil {
					return herr
				}
				if stop {
					slog.Debug("exit command received")
					return nil
				}
			}
		}

		if err == io.EOF {
			slog.Debug("input closed")
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeIOFailure, "failed to read input", err)
		}
	}
}

// readLine reads up to the next newline. n is the number of bytes consumed
// including the terminator; n is 0 only at end of input. A trailing "\r" is
// dropped. When the line exceeds limit, the rest of it is consumed without
// being kept and tooLong is set.
func readLine(br *bufio.Reader, limit int) (line string, n int, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := br.ReadSlice('\n')
		n += len(chunk)
		if !tooLong {
			buf = append(buf, chunk...)
			// room for a "\r\n" terminator
			if len(buf) > limit+2 {
				tooLong = true
				buf = nil
			}
		}
		if rerr == bufio.ErrBufferFull {
			continue
		}
		err = rerr
		break
	}

	buf = bytes.TrimSuffix(buf, []byte("\n"))
	buf = bytes.TrimSuffix(buf, []byte("\r"))
	if len(buf) > limit {
		tooLong = true
		buf = nil
	}
	return string(buf), n, tooLong, err
}

// Exited reports whether input stopped on the exit command rather than at
// end of input.
func (d *Dispatcher) Exited() bool {
	return d.exited.Load()
}

// Handle processes one line. stop is true for the exit command. Invalid
// SET_LEVEL arguments are reported on the console and do not change state.
// A returned error means the target no longer accepts entries.
func (d *Dispatcher) Handle(ctx context.Context, line string) (stop bool, err error) {
	cmd, perr := ParseLine(line, d.defaultLevel)

	switch cmd.Kind {
	case KindExit:
		d.exited.Store(true)
		return true, nil

	case KindSetLevel:
		if perr != nil {
			fmt.Fprintf(d.errOut, "Error: wrong level for %s command. Use %s.\n",
				SetLevelCommand, strings.Join(level.Names(), ", "))
			slog.Warn("invalid threshold change ignored", "line", line, "error", perr)
			return false, nil
		}
		if err := d.target.SetThreshold(cmd.Level); err != nil {
			fmt.Fprintf(d.errOut, "Error: %v\n", err)
			return false, nil
		}
		if !d.quiet {
			fmt.Fprintf(d.out, "LEVEL CHANGED TO -> %s\n", cmd.Level)
		}
		return false, nil

	default:
		if err := d.target.Log(ctx, cmd.Message, cmd.Level); err != nil {
			return false, fmt.Errorf("failed to enqueue message: %w", err)
		}
		return false, nil
	}
}
