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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/logq/pkg/config"
	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/logging"
)

// runArgs are the positional arguments of the root command.
type runArgs struct {
	path         string
	defaultLevel level.Level
	quiet        bool
}

func usageError() error {
	levels := strings.Join(level.Names(), ", ")
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("Usage: %s <log_filename> <DEFAULT_LEVEL>\nExample: %s app.log MEDIUM\nAvailable levels: %s",
			name, name, levels),
		map[string]any{"levels": level.Names()})
}

func parseArgs(cmd *cli.Command) (runArgs, error) {
	if cmd.NArg() != 2 {
		return runArgs{}, usageError()
	}

	path := cmd.Args().Get(0)
	if path == "" {
		return runArgs{}, usageError()
	}

	def, err := level.Parse(cmd.Args().Get(1))
	if err != nil {
		return runArgs{}, errors.Wrap(errors.ErrCodeInvalidLevel,
			fmt.Sprintf("invalid default log level, use %s", strings.Join(level.Names(), ", ")), err)
	}

	return runArgs{path: path, defaultLevel: def, quiet: cmd.Bool("quiet")}, nil
}

// loadConfig layers the config file, then explicitly set flags and their
// environment variables, over the built-in defaults.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.IsSet("queue-capacity") {
		cfg.Queue.Capacity = int(cmd.Int("queue-capacity"))
	}
	if cmd.IsSet("overflow") {
		cfg.Queue.Overflow = cmd.String("overflow")
	}
	if cmd.IsSet("listen") {
		cfg.Server.Listen = cmd.String("listen")
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	} else if cfg.LogLevel != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
