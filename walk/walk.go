// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package walk enumerates the locations where EditorConfig files that apply
// to a target file may live.
package walk

import (
	"errors"
	"path/filepath"
)

// DefaultFilename is the conventional EditorConfig file name.
const DefaultFilename = ".editorconfig"

// ErrRelativePath is returned by Candidates when the target is not an
// absolute path.
var ErrRelativePath = errors.New("target path is not absolute")

// A Candidate is a directory and the path of the configuration file that
// would apply from it. The file may not exist.
type Candidate struct {
	Dir  string
	Path string
}

// Candidates returns the configuration file locations for target, starting
// with target's parent directory and ending with the file system root. No
// file system access is performed. An empty filename is treated as
// DefaultFilename.
func Candidates(target, filename string) ([]Candidate, error) {
	if !filepath.IsAbs(target) {
		return nil, ErrRelativePath
	}
	if filename == "" {
		filename = DefaultFilename
	}
	var cands []Candidate
	dir := filepath.Dir(filepath.Clean(target))
	for {
		cands = append(cands, Candidate{
			Dir:  dir,
			Path: filepath.Join(dir, filename),
		})
		parent := filepath.Dir(dir)
		if parent == dir {
			// The parent of the root is itself.
			return cands, nil
		}
		dir = parent
	}
}
