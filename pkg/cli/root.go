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

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/logging"
	"github.com/NVIDIA/logq/pkg/queue"
	"github.com/NVIDIA/logq/pkg/sink"
)

const (
	name           = "logq"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// streams are the process's console handles and log file opener. Tests
// swap them.
type streams struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	openSink func(path string, threshold level.Level) (*sink.Sink, error)
}

func defaultStreams() streams {
	return streams{
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		openSink: openDefaultSink,
	}
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultStreams()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(s streams) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Asynchronous leveled file logger",
		ArgsUsage:             "<log_filename> <DEFAULT_LEVEL>",
		Description: fmt.Sprintf(`Reads lines from standard input and appends them to a log file through a
background writer. Each line becomes one record:

  [YYYY-MM-DD HH:MM:SS][LEVEL]: message

Input protocol:
  exit                 stop reading, drain pending records and quit
  SET_LEVEL <LEVEL>    change the minimum level written to the file
  <LEVEL> message      log message at LEVEL
  message              log message at DEFAULT_LEVEL

Levels: %s

# Examples

Log to app.log with MEDIUM as the default level:
  logq app.log MEDIUM

Also accept entries over HTTP:
  logq --listen :8080 app.log LOW
  curl -X POST localhost:8080/v1/entries -d '{"message":"hello","level":"HIGH"}'`,
			strings.Join(level.Names(), ", ")),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML or JSON config file",
				Sources: cli.EnvVars("LOGQ_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Level of logq's own diagnostics on stderr (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Value:   "info",
			},
			&cli.IntFlag{
				Name:    "queue-capacity",
				Usage:   "Maximum pending records, 0 for unbounded",
				Sources: cli.EnvVars("LOGQ_QUEUE_CAPACITY"),
			},
			&cli.StringFlag{
				Name: "overflow",
				Usage: fmt.Sprintf("Policy when a bounded queue is full (supported values: %v)",
					queue.SupportedOverflows()),
				Sources: cli.EnvVars("LOGQ_OVERFLOW"),
			},
			&cli.StringFlag{
				Name:    "listen",
				Usage:   "Address for the HTTP ingestion API (e.g. :8080), disabled when empty",
				Sources: cli.EnvVars("LOGQ_LISTEN"),
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Suppress the interactive banner and level change confirmations",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := parseArgs(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(ctx, s, cfg, args)
		},
	}
}
