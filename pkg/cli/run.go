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
	"errors"
	"fmt"
	"log/slog"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/logq/pkg/config"
	"github.com/NVIDIA/logq/pkg/dispatcher"
	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/pipeline"
	"github.com/NVIDIA/logq/pkg/server"
	"github.com/NVIDIA/logq/pkg/sink"
)

// run opens the sink, starts the pipeline and feeds it from the console
// and, when configured, from HTTP. It returns after the queue has been
// drained and the worker has stopped.
func run(ctx context.Context, s streams, cfg *config.Config, args runArgs) error {
	snk, err := s.openSink(args.path, args.defaultLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := snk.Close(); err != nil {
			slog.Error("failed to close log file", "path", args.path, "error", err)
		}
	}()

	p := pipeline.New(snk, pipeline.WithQueueOptions(cfg.QueueOptions()...))
	// the worker outlives ctx; shutdown drains it explicitly
	p.Start(context.WithoutCancel(ctx))
	notify(daemon.SdNotifyReady)

	inputErr, serveErr := serve(ctx, s, cfg, args, p)

	notify(daemon.SdNotifyStopping)
	if err := p.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to stop log pipeline: %w", err)
	}

	if inputErr != nil && !errors.Is(inputErr, context.Canceled) {
		return inputErr
	}
	return serveErr
}

// openDefaultSink initializes the process-wide sink and returns it.
func openDefaultSink(path string, threshold level.Level) (*sink.Sink, error) {
	if err := sink.Init(path, threshold); err != nil {
		return nil, err
	}
	return sink.Default()
}

// serve runs the producers until ctx is cancelled or the HTTP server
// fails. Without a server it also returns when input ends; with one, only
// the exit command or a read error ends it early.
func serve(ctx context.Context, s streams, cfg *config.Config, args runArgs, p *pipeline.Pipeline) (inputErr, serveErr error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	if cfg.Server.Listen != "" {
		srv := server.New(
			server.WithName(name),
			server.WithVersion(version),
			server.WithAddress(cfg.Server.Listen),
			server.WithRateLimit(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateLimitBurst),
			server.WithShutdownTimeout(cfg.Server.ShutdownTimeout.Duration),
			server.WithTarget(p, args.defaultLevel),
		)
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	d := dispatcher.New(p, args.defaultLevel,
		dispatcher.WithOutput(s.out, s.errOut),
		dispatcher.WithQuiet(args.quiet),
	)
	d.PrintBanner()

	// stdin reads cannot be interrupted, so the reader is not joined
	inputDone := make(chan error, 1)
	go func() {
		inputDone <- d.Run(gctx, s.in)
	}()

	select {
	case inputErr = <-inputDone:
		if inputErr == nil && cfg.Server.Listen != "" && !d.Exited() {
			// stdin may be /dev/null under a service manager
			slog.Info("input closed, serving HTTP until signal", "address", cfg.Server.Listen)
			<-gctx.Done()
		}
	case <-gctx.Done():
		slog.Info("shutdown requested", "reason", context.Cause(gctx))
	}

	cancel()
	serveErr = g.Wait()
	return inputErr, serveErr
}

func notify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("systemd notification failed", "state", state, "error", err)
		return
	}
	slog.Debug("systemd notification", "state", state, "sent", sent)
}
