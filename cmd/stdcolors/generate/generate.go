// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package generate

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/generator"
	"github.com/matt-FFFFFF/stdcolors/internal/output"
	"github.com/urfave/cli/v3"
)

const (
	stdoutFlag = "stdout"
	cliExitStr = ""
)

// New returns the generate command.
// The command downloads the color database and writes the header.
func New() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Download rgb.txt and generate the standard colors header",
		Description: `Fetch the X.org color database, drop names that only differ from an earlier
name by spacing, and write the result as a C header with an aligned
STANDARD_COLORS table.

The header is only written once the whole source has been parsed; any error
leaves the destination untouched.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        stdoutFlag,
				Usage:       "Print the header to stdout instead of writing the output file",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	s := cmdstate.Settings(ctx)

	logger.Info("fetching color source", "url", s.URL)

	res, err := generator.Run(ctx, s.URL)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to generate header from %s: %s", s.URL, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	logger.Info("built color table", "source_bytes", res.SourceBytes, "entries", res.Table.Len())

	if cmd.Bool(stdoutFlag) {
		if _, err := cmd.Root().Writer.Write(res.Header); err != nil {
			logger.Error(fmt.Sprintf("Failed to write header: %s", err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		return nil
	}

	if err := output.Write(s.Out, res.Header); err != nil {
		logger.Error(fmt.Sprintf("Failed to write header to %s: %s", s.Out, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	logger.Info(fmt.Sprintf("Header written to %s", s.Out))

	return nil
}
