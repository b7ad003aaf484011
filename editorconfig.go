// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package editorconfig resolves the EditorConfig properties that apply to a
file. See https://editorconfig.org/.

Resolve walks from the file's directory up to the file system root, reading
each .editorconfig it finds. The walk stops early at a file that contains
"root = true". Sections whose glob matches the file contribute their
properties, and files closer to the target take precedence over files
further away. Within a file, later sections take precedence over earlier
ones. A value of "unset" removes a property set by a more distant file.

Property names are returned in lowercase. Values of the standard properties
are lowercased too, as directed by a properties.Table.
*/
package editorconfig

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yourbase/editorconfig/glob"
	"github.com/yourbase/editorconfig/ini"
	"github.com/yourbase/editorconfig/properties"
	"github.com/yourbase/editorconfig/version"
	"github.com/yourbase/editorconfig/walk"
	"zombiezen.com/go/log"
)

// DefaultFilename is the name of the configuration files Resolve looks for
// unless Options.Filename is set.
const DefaultFilename = walk.DefaultFilename

// CurrentVersion is the newest EditorConfig specification version whose
// behavior Resolve implements.
var CurrentVersion = version.Must(0, 17, 2)

// Options holds optional parameters for Resolve.
type Options struct {
	// Filename is the configuration file name to look for in each directory.
	// If empty, DefaultFilename is used.
	Filename string

	// Version is the specification version whose behavior to emulate.
	// The zero value means CurrentVersion.
	Version version.Version

	// Strict makes an existing but unreadable configuration file fail the
	// resolution with an IOFailure. By default such files are logged and
	// treated as absent.
	Strict bool

	// FS is the file system to read configuration files from. Absolute
	// paths are mapped into FS by removing the volume name and the leading
	// separator, so FS should be rooted at the file system root.
	// If nil, the operating system's file system is used.
	FS fs.FS

	// Properties controls value normalization. If nil, properties.Default()
	// is used.
	Properties *properties.Table

	// Cache holds compiled section patterns across calls. If nil, patterns
	// are compiled on every call.
	Cache *glob.Cache
}

// A RuleSet maps lowercase property names to values.
type RuleSet map[string]string

// Get returns the value of the named property, compared
// case-insensitively, or the empty string if it is not set.
func (rs RuleSet) Get(name string) string {
	return rs[strings.ToLower(name)]
}

// Names returns the property names in sorted order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fileMatch holds the properties of one configuration file's matching
// sections, in file order.
type fileMatch struct {
	path  string
	props []ini.Property
}

// Resolve returns the properties that apply to the file at the absolute path
// target. Nil options are treated identically as passing the zero value.
//
// Errors are always of type *Error. A malformed line in any configuration
// file fails the whole resolution; missing files are not errors.
func Resolve(ctx context.Context, target string, opts *Options) (RuleSet, error) {
	if opts == nil {
		opts = new(Options)
	}
	v := opts.Version
	if v.IsZero() {
		v = CurrentVersion
	}
	if CurrentVersion.Less(v) {
		return nil, &Error{Kind: VersionTooNew}
	}
	cands, err := walk.Candidates(target, opts.Filename)
	if err != nil {
		return nil, &Error{Kind: RelativePath, Err: err}
	}
	matches, err := collect(ctx, filepath.Clean(target), cands, opts)
	if err != nil {
		return nil, err
	}
	table := opts.Properties
	if table == nil {
		table = properties.Default()
	}
	set := behaviorsFor(v)
	rules := merge(matches, func(name, value string) string {
		if !set.has(lowercaseValues) {
			return value
		}
		return table.Normalize(name, value, v)
	})
	applyDefaults(rules, set)
	return rules, nil
}

// collect reads the candidate files nearest-first and returns the matching
// properties of each, stopping after a root file.
func collect(ctx context.Context, target string, cands []walk.Candidate, opts *Options) ([]fileMatch, error) {
	var matches []fileMatch
	var firstReadErr *Error
	found := false
	for _, cand := range cands {
		data, err := readFile(opts.FS, cand.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			readErr := &Error{Kind: IOFailure, File: cand.Path, Err: err}
			if opts.Strict {
				return nil, readErr
			}
			log.Warnf(ctx, "Skipping unreadable %s: %v", cand.Path, err)
			if firstReadErr == nil {
				firstReadErr = readErr
			}
			continue
		}
		found = true
		f, err := ini.Parse(bytes.NewReader(data))
		if err != nil {
			var syntaxErr *ini.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, &Error{Kind: SyntaxError, File: cand.Path, Line: syntaxErr.Line, Err: err}
			}
			return nil, &Error{Kind: IOFailure, File: cand.Path, Err: err}
		}
		m := fileMatch{path: cand.Path}
		m.props = append(m.props, f.Preamble...)
		for _, sect := range f.Sections {
			if opts.Cache.Compile(sect.Pattern, cand.Dir).Match(target) {
				m.props = append(m.props, sect.Properties...)
			}
		}
		log.Debugf(ctx, "Read %s: %d matching properties", cand.Path, len(m.props))
		matches = append(matches, m)
		if f.IsRoot() {
			break
		}
	}
	if !found && firstReadErr != nil {
		return nil, firstReadErr
	}
	return matches, nil
}

// merge applies matches so that the first (nearest) file is applied last and
// wins. normalize is called on each value before it is stored.
func merge(matches []fileMatch, normalize func(name, value string) string) RuleSet {
	rules := make(RuleSet)
	for i := len(matches) - 1; i >= 0; i-- {
		for _, p := range matches[i].props {
			name := strings.ToLower(p.Name)
			switch {
			case name == "root":
				// Directive only.
			case strings.EqualFold(p.Value, "unset"):
				delete(rules, name)
			default:
				rules[name] = normalize(name, p.Value)
			}
		}
	}
	return rules
}

func readFile(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return os.ReadFile(path)
	}
	return fs.ReadFile(fsys, fsPath(path))
}

// fsPath converts an absolute file system path into an fs.FS path.
func fsPath(path string) string {
	path = filepath.ToSlash(strings.TrimPrefix(path, filepath.VolumeName(path)))
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "."
	}
	return path
}
