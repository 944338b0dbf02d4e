// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output writes generated files through an afero filesystem.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var (
	// ErrWrite is returned when the destination cannot be written.
	ErrWrite = errors.New("failed to write output file")
	// ErrRead is returned when an existing output file cannot be read.
	ErrRead = errors.New("failed to read output file")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Write creates or truncates path and writes data to it in a single call.
// Missing parent directories are created.
func Write(path string, data []byte) error {
	fs := FsFactory()

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, dirMode); err != nil {
			return errors.Join(ErrWrite, err)
		}
	}

	if err := afero.WriteFile(fs, path, data, fileMode); err != nil {
		return errors.Join(ErrWrite, fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

// Read returns the content of a previously written file.
// A missing file is reported with an error wrapping os.ErrNotExist.
func Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Join(ErrRead, fmt.Errorf("%s: %w", path, os.ErrNotExist))
		}

		return nil, errors.Join(ErrRead, err)
	}

	return data, nil
}
