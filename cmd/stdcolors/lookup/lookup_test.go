// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package lookup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/stdcolors/cmd/stdcolors/cmdstate"
	"github.com/matt-FFFFFF/stdcolors/internal/colortable"
	"github.com/matt-FFFFFF/stdcolors/internal/generator"
	"github.com/matt-FFFFFF/stdcolors/internal/settings"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `240 248 255		alice blue
240 248 255		AliceBlue
173 216 230		light blue
173 216 230		LightBlue
255  16   0		orangered
`

func table(t *testing.T) *colortable.Table {
	t.Helper()

	tbl, err := colortable.Parse([]byte(source))
	require.NoError(t, err)

	return tbl
}

func TestResolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Resolve(&buf, table(t), []string{"LightBlue", "ORANGERED"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "light blue 0xADD8E6FF #add8e6")
	assert.Contains(t, lines[1], "orangered  0xFF1000FF #ff1000")
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := Resolve(&buf, table(t), []string{"nope", "alice blue", "lightbluish"})
	require.ErrorIs(t, err, ErrUnknownColor)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, buf.String(), "alice blue")
}

func TestComplete(t *testing.T) {
	t.Parallel()

	tbl := table(t)
	assert.Equal(t, []string{"alice blue"}, Complete(tbl, "Al"))
	assert.Equal(t, []string{"alice blue", "light blue", "orangered"}, Complete(tbl, ""))
	assert.Empty(t, Complete(tbl, "zz"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stubs := gostub.Stub(&settings.FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})
	stubs.Stub(&generator.FetchFunc, func(context.Context, string) ([]byte, error) {
		return []byte(source), nil
	})
	defer stubs.Reset()

	buf := &bytes.Buffer{}
	root := cmdstate.NewRoot(New())
	root.Writer = buf

	err := root.Run(context.Background(), append([]string{"stdcolors"}, args...))

	return buf.String(), err
}

func TestLookupCmd(t *testing.T) {
	out, err := run(t, "lookup", "alice blue", "AliceBlue")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "alice blue 0xF0F8FFFF"))
}

func TestLookupCmd_Unknown(t *testing.T) {
	out, err := run(t, "lookup", "orangered", "mauve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")
	assert.Contains(t, out, "orangered")
}

func TestLookupCmd_NoNames(t *testing.T) {
	_, err := run(t, "lookup")
	require.Error(t, err)
}
