// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate resolves the settings and logger shared by all subcommands
// and carries them on the context.
package cmdstate

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/settings"
	"github.com/urfave/cli/v3"
)

// Root flag names.
const (
	ConfigFlag  = "config"
	URLFlag     = "url"
	OutFlag     = "out"
	LogJSONFlag = "log-json"
)

type settingsKey struct{}

// Flags returns the root command flags read by Before.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      ConfigFlag,
			Aliases:   []string{"c"},
			Usage:     "Read settings from this YAML file (default " + settings.DefaultFile + " when present)",
			TakesFile: true,
			Sources:   cli.EnvVars("STDCOLORS_CONFIG"),
		},
		&cli.StringFlag{
			Name:    URLFlag,
			Aliases: []string{"u"},
			Usage: "Location of the rgb.txt source. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
			Sources: cli.EnvVars("STDCOLORS_URL"),
		},
		&cli.StringFlag{
			Name:      OutFlag,
			Aliases:   []string{"o"},
			Usage:     "Path of the generated header",
			TakesFile: true,
			Sources:   cli.EnvVars("STDCOLORS_OUT"),
		},
		&cli.BoolFlag{
			Name:  LogJSONFlag,
			Usage: "Write logs to stderr as JSON",
			Value: false,
		},
	}
}

// Before loads the settings, applies flag and environment overrides and
// installs the logger.
func Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool(LogJSONFlag) {
		ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
	}

	s, err := settings.Load(cmd.String(ConfigFlag))
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}

	s = s.Merge(settings.Settings{
		URL: cmd.String(URLFlag),
		Out: cmd.String(OutFlag),
	})

	ctxlog.Debug(ctx, "resolved settings", "url", s.URL, "out", s.Out)

	return WithSettings(ctx, s), nil
}

// WithSettings returns a copy of ctx carrying s.
func WithSettings(ctx context.Context, s settings.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// Settings returns the settings stored by Before, or the defaults.
func Settings(ctx context.Context) settings.Settings {
	s, ok := ctx.Value(settingsKey{}).(settings.Settings)
	if !ok {
		return settings.Default()
	}

	return s
}

// NewRoot returns the stdcolors root command with the given subcommands.
// Errors are returned from Run rather than exiting the process.
func NewRoot(commands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "stdcolors",
		Usage: "stdcolors generate -o include/stdColors.h",
		Description: `stdcolors turns the X.org rgb.txt color database into a C header holding a
static, lowercase, deduplicated table of color names and RRGGBBAA pixel values.`,
		Commands:       commands,
		Flags:          Flags(),
		Before:         Before,
		Writer:         os.Stdout,
		ErrWriter:      os.Stderr,
		Copyright:      "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
	}
}
