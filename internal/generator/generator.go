// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generator runs the fetch, build and render steps.
// Nothing is written here: callers receive the complete header and decide where it goes.
package generator

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/stdcolors/internal/colortable"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
	"github.com/matt-FFFFFF/stdcolors/internal/fetch"
	"github.com/matt-FFFFFF/stdcolors/internal/header"
)

// FetchFunc retrieves the raw source. It is a variable so tests can replace it.
var FetchFunc = fetch.Bytes

// Result is the outcome of a generation run.
type Result struct {
	Table  *colortable.Table
	Header []byte
	// SourceBytes is the size of the fetched source.
	SourceBytes int
}

// Table fetches the source at url and builds the color table from it.
func Table(ctx context.Context, url string) (*colortable.Table, int, error) {
	data, err := FetchFunc(ctx, url)
	if err != nil {
		return nil, 0, err
	}

	table, err := colortable.Parse(data)
	if err != nil {
		return nil, len(data), fmt.Errorf("%s: %w", url, err)
	}

	ctxlog.Debug(ctx, "built color table", "entries", table.Len(), "longest_name", table.MaxNameLen())

	return table, len(data), nil
}

// Run fetches, builds and renders the header for the source at url.
func Run(ctx context.Context, url string) (Result, error) {
	table, n, err := Table(ctx, url)
	if err != nil {
		return Result{}, err
	}

	out, err := header.Bytes(table)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Table:       table,
		Header:      out,
		SourceBytes: n,
	}, nil
}
