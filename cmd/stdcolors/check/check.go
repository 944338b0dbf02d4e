// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package check

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/generator"
	"github.com/matt-FFFFFF/stdcolors/internal/output"
	"github.com/urfave/cli/v3"
)

const (
	fileArg    = "file"
	cliExitStr = ""
)

// ErrOutOfDate is returned when the existing header differs from a fresh generation.
var ErrOutOfDate = errors.New("header is out of date")

// New returns the check command.
// The command verifies that an existing header matches what generate would write.
func New() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify that an existing header is up to date",
		Description: `Regenerate the header in memory and compare it with an existing file.
Exits non-zero and reports the first differing line when they differ.
Nothing is written.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "[HEADER]",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	s := cmdstate.Settings(ctx)

	path := cmd.StringArg(fileArg)
	if path == "" {
		path = s.Out
	}

	existing, err := output.Read(path)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read %s: %s", path, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	res, err := generator.Run(ctx, s.URL)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to generate header from %s: %s", s.URL, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	if err := compare(cmd.Root().Writer, path, existing, res.Header); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Info(fmt.Sprintf("%s is up to date", path))

	return nil
}

// compare reports the first line that differs between have and want to w.
func compare(w io.Writer, path string, have, want []byte) error {
	if bytes.Equal(have, want) {
		return nil
	}

	haveLines := bytes.Split(have, []byte("\n"))
	wantLines := bytes.Split(want, []byte("\n"))

	line := 0
	for line < len(haveLines) && line < len(wantLines) && bytes.Equal(haveLines[line], wantLines[line]) {
		line++
	}

	_, _ = fmt.Fprintf(w, "%s:%d:\n", path, line+1)
	_, _ = fmt.Fprintf(w, "  have: %q\n", lineAt(haveLines, line))
	_, _ = fmt.Fprintf(w, "  want: %q\n", lineAt(wantLines, line))

	return fmt.Errorf("%w: %s", ErrOutOfDate, path)
}

func lineAt(lines [][]byte, i int) string {
	if i >= len(lines) {
		return "<EOF>"
	}

	return string(lines[i])
}
