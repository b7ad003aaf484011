// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package glob compiles and evaluates EditorConfig section patterns.
//
// A pattern is scoped to the directory of the file that defines it and is
// matched against target paths relative to that directory, using '/' as the
// separator regardless of platform.
//
//	*           any characters except '/'
//	**          any characters, including '/'
//	?           any single character except '/'
//	[seq]       any single character in seq; ranges such as a-z are allowed
//	[!seq]      any single character not in seq ([^seq] is equivalent)
//	{s1,s2}     any of the comma-separated alternatives, which may nest
//	{n1..n2}    any integer between n1 and n2 inclusive
//	\c          the character c, literally
//
// When compiled as a section pattern, a pattern without a '/' matches the last
// path element in any subdirectory.
// A pattern containing a '/' is matched against the full relative path; a
// leading '/' is ignored. "**/" at the start of a path element also matches no
// directories at all, so "a/**/b" matches "a/b".
//
// Character classes never match '/'. A bracket expression that contains a '/'
// is not a class: the '[' is taken literally. Braces with no comma and no
// numeric range, such as "{}" or "{word}", are taken literally, as is a '}'
// without a matching '{'. A pattern with an unclosed '[' or '{' is malformed
// and never matches anything.
//
// Matching is case-sensitive.
package glob

import (
	"path/filepath"
	"strings"
)

// A Glob is a compiled pattern bound to the directory that defines it.
// Globs are immutable and safe for concurrent use.
type Glob struct {
	pattern string
	dir     string
	nodes   []node
	// malformed is set when the pattern failed to parse. A malformed Glob
	// matches nothing.
	malformed bool
}

// Compile compiles an EditorConfig pattern defined in the file system
// directory dir. Compile never fails: a malformed pattern yields a Glob that
// never matches.
func Compile(pattern, dir string) *Glob {
	g := &Glob{pattern: pattern, dir: dir}
	expanded := pattern
	switch {
	case !strings.Contains(pattern, "/"):
		expanded = "**/" + pattern
	case strings.HasPrefix(pattern, "/"):
		expanded = pattern[1:]
	}
	nodes, err := parse(expanded)
	if err != nil {
		g.malformed = true
		return g
	}
	g.nodes = nodes
	return g
}

// Pattern returns the pattern g was compiled from.
func (g *Glob) Pattern() string { return g.pattern }

// Dir returns the directory g is scoped to.
func (g *Glob) Dir() string { return g.dir }

// Malformed reports whether the pattern failed to parse.
func (g *Glob) Malformed() bool { return g.malformed }

// Match reports whether the file system path target matches g. target is
// made relative to g's directory; paths outside that directory never match.
func (g *Glob) Match(target string) bool {
	rel, err := filepath.Rel(g.dir, target)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	return g.MatchRelative(rel)
}

// MatchRelative reports whether the '/'-separated path rel, relative to g's
// directory, matches g.
func (g *Glob) MatchRelative(rel string) bool {
	if g.malformed {
		return false
	}
	return match(g.nodes, rel)
}

// Match reports whether the entire '/'-separated name matches pattern.
// Unlike Compile, Match applies no section anchoring: "*.rs" matches
// "lib.rs" but not "src/lib.rs". A malformed pattern matches nothing.
func Match(pattern, name string) bool {
	nodes, err := parse(pattern)
	if err != nil {
		return false
	}
	return match(nodes, name)
}
