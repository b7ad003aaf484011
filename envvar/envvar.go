// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration.
package envvar

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yourbase/editorconfig/version"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. If it is empty
// or unset, it returns false. Values other than those accepted by
// strconv.ParseBool are reported as an error.
func Bool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}

// Version returns the value of a version environment variable, such as
// "0.12.5". If it is empty or unset, it returns the default value.
func Version(key string, defaultValue version.Version) (version.Version, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	parsed, err := version.Parse(v)
	if err != nil {
		return version.Version{}, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}
