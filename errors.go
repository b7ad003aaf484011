// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import "fmt"

// ErrorKind identifies the class of a resolution failure.
type ErrorKind int

// Kinds of resolution errors.
const (
	// SyntaxError means a configuration file contains a malformed line.
	// Error.File and Error.Line identify it.
	SyntaxError ErrorKind = 1 + iota
	// RelativePath means the target path was not absolute.
	RelativePath
	// VersionTooNew means the requested version is newer than
	// CurrentVersion.
	VersionTooNew
	// IOFailure means a configuration file exists but could not be read.
	// Error.File identifies it.
	IOFailure
	// MemoryError is kept for message compatibility with libeditorconfig.
	// Resolve never returns it.
	MemoryError
)

// Message returns the human-readable message for the kind. The strings match
// libeditorconfig's so existing callers can compare against them.
func (k ErrorKind) Message() string {
	switch k {
	case SyntaxError:
		return "Failed to parse file."
	case RelativePath:
		return "Input file must be a full path name."
	case VersionTooNew:
		return "Required version is greater than the current version."
	case IOFailure:
		return "Failed to read file."
	case MemoryError:
		return "Memory error."
	default:
		return "Unknown error."
	}
}

// ErrorMessage returns the human-readable message for an error kind. It is
// equivalent to k.Message().
func ErrorMessage(k ErrorKind) string {
	return k.Message()
}

// Error is the error type returned by Resolve.
type Error struct {
	Kind ErrorKind
	// File is the configuration file at fault, if any.
	File string
	// Line is the 1-based line number of a SyntaxError.
	Line int
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.Message()
	switch {
	case e.Kind == SyntaxError:
		msg = fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		msg = e.File + ": " + msg
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
