// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"testing"

	"github.com/yourbase/editorconfig/version"
)

func TestOptionsFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(FilenameEnv, "")
		t.Setenv(VersionEnv, "")
		t.Setenv(StrictEnv, "")
		got, err := OptionsFromEnv()
		if err != nil {
			t.Fatal(err)
		}
		if got.Filename != DefaultFilename || !got.Version.IsZero() || got.Strict {
			t.Errorf("OptionsFromEnv() = %+v; want {Filename: %s}", got, DefaultFilename)
		}
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv(FilenameEnv, ".editorconfig.local")
		t.Setenv(VersionEnv, "0.12.5")
		t.Setenv(StrictEnv, "true")
		got, err := OptionsFromEnv()
		if err != nil {
			t.Fatal(err)
		}
		if got.Filename != ".editorconfig.local" || got.Version != version.Must(0, 12, 5) || !got.Strict {
			t.Errorf("OptionsFromEnv() = %+v; want {Filename: .editorconfig.local, Version: 0.12.5, Strict: true}", got)
		}
	})

	t.Run("BadVersion", func(t *testing.T) {
		t.Setenv(VersionEnv, "0.12.5-rc1")
		if _, err := OptionsFromEnv(); err == nil {
			t.Error("OptionsFromEnv() did not return an error")
		}
	})

	t.Run("BadStrict", func(t *testing.T) {
		t.Setenv(VersionEnv, "")
		t.Setenv(StrictEnv, "sometimes")
		if _, err := OptionsFromEnv(); err == nil {
			t.Error("OptionsFromEnv() did not return an error")
		}
	})
}
