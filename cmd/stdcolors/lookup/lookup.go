// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/matt-FFFFFF/stdcolors/internal/colortable"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/generator"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	interactiveFlag = "interactive"
	prompt          = "color> "
	swatchWidth     = 4
	cliExitStr      = ""
)

// ErrUnknownColor is returned for names that are not in the table.
var ErrUnknownColor = errors.New("unknown color")

// New returns the lookup command.
// The command resolves color names against the generated table.
func New() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Resolve color names to pixel values",
		ArgsUsage: "NAME...",
		Description: `Build the color table from the configured source and resolve each NAME.
Matching ignores case, and spaces in table names may be left out,
so "LightBlue" resolves to "light blue".`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        interactiveFlag,
				Aliases:     []string{"i"},
				Usage:       "Read names from an interactive prompt with completion",
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
	names := cmd.Args().Slice()
	interactive := cmd.Bool(interactiveFlag)

	if len(names) == 0 && !interactive {
		logger.Error("Please provide at least one color name, or use --interactive.")
		return cli.Exit(cliExitStr, 1)
	}

	table, _, err := generator.Table(ctx, s.URL)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to build color table from %s: %s", s.URL, err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	w := cmd.Root().Writer

	if interactive {
		return repl(ctx, w, table)
	}

	if err := Resolve(w, table, names); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// Resolve prints one line per found name and returns every unknown name as a
// multierror wrapping ErrUnknownColor.
func Resolve(w io.Writer, table *colortable.Table, names []string) error {
	var merr *multierror.Error

	for _, name := range names {
		e, ok := table.Lookup(name)
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q", ErrUnknownColor, name))
			continue
		}

		if _, err := io.WriteString(w, FormatEntry(e, table.MaxNameLen())); err != nil {
			return err
		}
	}

	return merr.ErrorOrNil()
}

// FormatEntry renders a swatch, the name padded to width, the packed literal and the #rrggbb form.
func FormatEntry(e colortable.Entry, width int) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(e.Value.Hex())).
		Render(strings.Repeat(" ", swatchWidth))

	return fmt.Sprintf("%s %-*s %s %s\n", swatch, width, e.Name, e.Value.Literal(), e.Value.Hex())
}

// Complete returns the table names starting with the lowercased prefix, in table order.
func Complete(table *colortable.Table, prefix string) []string {
	prefix = strings.ToLower(prefix)

	var res []string

	for _, name := range table.Names() {
		if strings.HasPrefix(name, prefix) {
			res = append(res, name)
		}
	}

	return res
}

func repl(ctx context.Context, w io.Writer, table *colortable.Table) error {
	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(l string) []string {
		return Complete(table, l)
	})

	for ctx.Err() == nil {
		q, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to read input: %s", err.Error()), 1)
		}

		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}

		line.AppendHistory(q)

		if err := Resolve(w, table, []string{q}); err != nil {
			_, _ = fmt.Fprintln(w, err.Error())
		}
	}

	return nil
}
