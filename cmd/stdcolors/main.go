// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the stdcolors command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/stdcolors"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/check"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/config"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/generate"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/lookup"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd := cmdstate.NewRoot(
		generate.New(),
		check.New(),
		lookup.New(),
		config.New(),
	)
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", stdcolors.Version, stdcolors.Commit)

	err := rootCmd.Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
