// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package settings holds the generator configuration.
// Values come from defaults, then an optional YAML file; environment
// variables and flags are layered on top by the command line.
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/stdcolors/internal/fetch"
	"github.com/spf13/afero"
)

const (
	// DefaultFile is read when no configuration file is given explicitly.
	DefaultFile = ".stdcolors.yaml"
	// DefaultOut is the default generated header path.
	DefaultOut = "stdColors.h"
)

var (
	// ErrReadConfig is returned when the configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrInvalidConfig is returned when the configuration file is not valid YAML for Settings.
	ErrInvalidConfig = errors.New("invalid config file")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Settings is the effective generator configuration.
type Settings struct {
	// URL is the go-getter address of the rgb.txt source.
	URL string `yaml:"url"`
	// Out is the path of the generated header.
	Out string `yaml:"out"`
}

// Default returns the built in settings.
func Default() Settings {
	return Settings{
		URL: fetch.DefaultURL,
		Out: DefaultOut,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// If path is empty DefaultFile is used, and it is not an error for it to be missing.
func Load(path string) (Settings, error) {
	s := Default()
	explicit := path != ""

	if !explicit {
		path = DefaultFile
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return Settings{}, errors.Join(ErrReadConfig, err)
	}

	var file Settings
	if err := yaml.UnmarshalWithOptions(data, &file, yaml.DisallowUnknownField()); err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return s.Merge(file), nil
}

// Merge returns s with every non-empty field of o applied.
func (s Settings) Merge(o Settings) Settings {
	if o.URL != "" {
		s.URL = o.URL
	}

	if o.Out != "" {
		s.Out = o.Out
	}

	return s
}

// YAML renders the settings as a YAML document.
func (s Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
