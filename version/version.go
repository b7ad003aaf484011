// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package version provides the EditorConfig specification version triple
// used to gate resolution behavior.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// A Version is an immutable (major, minor, patch) triple. Versions are totally
// ordered lexicographically. The zero value is 0.0.0.
type Version struct {
	major int
	minor int
	patch int
}

var errNegative = errors.New("version numbers cannot be negative")

// New returns the version major.minor.patch. It returns an error if any
// component is negative.
func New(major, minor, patch int) (Version, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return Version{}, fmt.Errorf("new version %d.%d.%d: %w", major, minor, patch, errNegative)
	}
	return Version{major, minor, patch}, nil
}

// Must is like New but panics if any component is negative.
func Must(major, minor, patch int) Version {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses a version of the form "MAJOR.MINOR.PATCH". A leading "v" is
// permitted and missing minor or patch numbers are treated as zero.
// Pre-release and build suffixes are rejected.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	vs := s
	if !strings.HasPrefix(vs, "v") {
		vs = "v" + vs
	}
	if !semver.IsValid(vs) {
		return Version{}, fmt.Errorf("parse version %q: invalid syntax", s)
	}
	if semver.Prerelease(vs) != "" || semver.Build(vs) != "" {
		return Version{}, fmt.Errorf("parse version %q: pre-release and build suffixes not allowed", s)
	}
	parts := strings.Split(strings.TrimPrefix(semver.Canonical(vs), "v"), ".")
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("parse version %q: %w", s, err)
		}
		nums[i] = n
	}
	return Version{nums[0], nums[1], nums[2]}, nil
}

// Major returns the major version number.
func (v Version) Major() int { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() int { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() int { return v.patch }

// IsZero reports whether v is 0.0.0.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0, or +1 depending on whether v is less than, equal to,
// or greater than w.
func (v Version) Compare(w Version) int {
	switch {
	case v.major != w.major:
		return cmpInt(v.major, w.major)
	case v.minor != w.minor:
		return cmpInt(v.minor, w.minor)
	default:
		return cmpInt(v.patch, w.patch)
	}
}

// Less reports whether v sorts before w.
func (v Version) Less(w Version) bool {
	return v.Compare(w) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the version as "MAJOR.MINOR.PATCH".
func (v Version) String() string {
	return strconv.Itoa(v.major) + "." + strconv.Itoa(v.minor) + "." + strconv.Itoa(v.patch)
}

// MarshalText formats the version like String.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the version like Parse.
func (v *Version) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
