// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"fmt"

	"github.com/yourbase/editorconfig/envvar"
	"github.com/yourbase/editorconfig/version"
)

// Environment variables read by OptionsFromEnv.
const (
	FilenameEnv = "EDITORCONFIG_FILENAME"
	VersionEnv  = "EDITORCONFIG_VERSION"
	StrictEnv   = "EDITORCONFIG_STRICT"
)

// OptionsFromEnv returns options configured from the environment:
// EDITORCONFIG_FILENAME sets Filename, EDITORCONFIG_VERSION sets Version
// (e.g. "0.12.5"), and EDITORCONFIG_STRICT sets Strict.
func OptionsFromEnv() (*Options, error) {
	v, err := envvar.Version(VersionEnv, version.Version{})
	if err != nil {
		return nil, fmt.Errorf("options from environment: %w", err)
	}
	strict, err := envvar.Bool(StrictEnv)
	if err != nil {
		return nil, fmt.Errorf("options from environment: %w", err)
	}
	return &Options{
		Filename: envvar.Get(FilenameEnv, DefaultFilename),
		Version:  v,
		Strict:   strict,
	}, nil
}
