// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fetch retrieves the raw color source using Hashicorp's go-getter,
// so the source may be an HTTP(S) URL, a local path or any other go-getter address.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/stdcolors/internal/ctxlog"
)

// DefaultURL is the upstream X.org color database.
const DefaultURL = "https://cgit.freedesktop.org/xorg/app/rgb/plain/rgb.txt"

const (
	tmpDirPattern         = "stdcolors-getter-*"
	dstName               = "g"
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	goGetterSchemeSep     = "::"
	minimumGetterParts    = 3 // scheme, host and sub path
)

// ErrFetch is returned when the source cannot be retrieved.
var ErrFetch = errors.New("failed to fetch color source")

// Bytes retrieves the content of the file at url.
// The download happens in a temporary directory that is removed before returning.
func Bytes(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty url", ErrFetch)
	}

	tmpDir, err := os.MkdirTemp("", tmpDirPattern)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, dstName),
		Pwd:     wd,
		GetMode: getter.ModeFile,
		Copy:    true,
	}

	// Repository style sources (git::https://host/repo//rgb.txt?ref=x) cannot be
	// fetched as a single file, so fetch the directory and read the file from it.
	// https://github.com/hashicorp/go-getter/issues/98
	var fileName string

	if isSubdirURL(url) {
		newURL, name := splitFileNameFromGetterURL(url)
		if newURL == "" || name == "" {
			return nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetch, url)
		}

		req.Src = newURL
		req.GetMode = getter.ModeDir
		fileName = name
	}

	ctxlog.Debug(ctx, "fetching color source", "src", req.Src, "mode", req.GetMode)

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	path := res.Dst
	if fileName != "" {
		path = filepath.Join(res.Dst, fileName)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	ctxlog.Debug(ctx, "fetched color source", "src", url, "bytes", len(bytes))

	return bytes, nil
}

// isSubdirURL reports whether url uses the go-getter "//" sub path syntax
// after the scheme, e.g. git::https://example.com/repo.git//rgb.txt.
func isSubdirURL(url string) bool {
	if _, after, ok := strings.Cut(url, goGetterSchemeSep); ok {
		url = after
	}

	if _, after, ok := strings.Cut(url, "://"); ok {
		url = after
	}

	return strings.Contains(url, goGetterPathSeparator)
}

// splitFileNameFromGetterURL splits the URL into the directory and file name.
// It returns the new getter URL without the file name and the file name itself.
// It will append any ref query parameter to the new URL if it exists.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, ok := strings.Cut(last, goGetterRefSeparator); ok {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
