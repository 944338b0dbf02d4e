// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package header

import (
	"os"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/stdcolors/internal/colortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallSource = `! comment
255 250 250 snow
248 248 255 ghost white
248 248 255 GhostWhite
255 16 0 orangered
`

func buildTable(t *testing.T, src string) *colortable.Table {
	t.Helper()

	table, err := colortable.Build(strings.NewReader(src))
	require.NoError(t, err)

	return table
}

func TestBytes_MatchesGolden(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile("testdata/small.h")
	require.NoError(t, err)

	got, err := Bytes(buildTable(t, smallSource))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestBytes_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Bytes(buildTable(t, smallSource))
	require.NoError(t, err)

	second, err := Bytes(buildTable(t, smallSource))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRows_Alignment(t *testing.T) {
	t.Parallel()

	table := buildTable(t, smallSource)
	lines := strings.Split(Rows(table), "\n")
	require.Len(t, lines, table.Len())

	want := len(RowIndent) + len(`{"`) + table.MaxNameLen() + len(`",`) + 1
	for _, l := range lines {
		assert.Equal(t, want, strings.Index(l, "0x"), "row %q", l)
	}
}

func TestRows_Separators(t *testing.T) {
	t.Parallel()

	lines := strings.Split(Rows(buildTable(t, smallSource)), "\n")
	require.NotEmpty(t, lines)

	for _, l := range lines[:len(lines)-1] {
		assert.True(t, strings.HasSuffix(l, "},"), "row %q", l)
	}

	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "FF}"))
}

func TestRows_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Rows(colortable.New()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestRender_WriteError(t *testing.T) {
	t.Parallel()

	err := Render(failingWriter{}, buildTable(t, smallSource))
	require.ErrorIs(t, err, ErrRender)
}
