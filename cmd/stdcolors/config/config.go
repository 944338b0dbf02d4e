// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/urfave/cli/v3"
)

// New returns the config command.
// The command prints the effective settings.
func New() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective settings as YAML",
		Description: `Print the settings after applying, in order, the defaults, the YAML config
file, STDCOLORS_* environment variables and command line flags.
The output is a valid config file.`,
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	out, err := cmdstate.Settings(ctx).YAML()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to render settings: %s", err.Error()), 1)
	}

	if _, err := cmd.Root().Writer.Write(out); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write settings: %s", err.Error()), 1)
	}

	return nil
}
