// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// maxLineSize is the longest line Parse accepts.
const maxLineSize = 1 << 20

var utf8BOM = []byte("\xef\xbb\xbf")

// A File is the parsed form of an EditorConfig file. The zero value is an
// empty file. Files can be read by multiple concurrent goroutines.
type File struct {
	// Preamble holds the properties that appear before the first section
	// header.
	Preamble []Property
	// Sections holds the sections in file order.
	Sections []Section
}

// A Section is a glob pattern and the properties listed under it.
type Section struct {
	Pattern    string
	Properties []Property
}

// A Property is a single name/value pair as written in the file.
type Property struct {
	Name  string
	Value string
}

// SyntaxError is returned by Parse for a line that is neither a comment, a
// section header, nor a property.
type SyntaxError struct {
	// Line is the 1-based line number of the offending line.
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse ini file: line %d: %s", e.Line, e.Msg)
}

// Parse parses an EditorConfig file. On error, the returned File is nil: no
// partial results are produced. Malformed lines are reported as *SyntaxError;
// errors reading from r, including lines longer than 1 MiB, are returned as
// is.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*File, error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	f := new(File)
	var curr *Section
	lineno := 1
	for ; s.Scan(); lineno++ {
		raw := s.Bytes()
		if lineno == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}
		line := strings.TrimFunc(string(raw), unicode.IsSpace)
		if line == "" {
			continue
		}
		switch line[0] {
		case ';', '#':
			continue
		case '[':
			if line[len(line)-1] != ']' {
				return nil, &SyntaxError{Line: lineno, Msg: "missing section closing bracket"}
			}
			f.Sections = append(f.Sections, Section{
				Pattern: strings.TrimFunc(line[1:len(line)-1], unicode.IsSpace),
			})
			curr = &f.Sections[len(f.Sections)-1]
		default:
			i := strings.IndexAny(line, "=:")
			if i == -1 {
				return nil, &SyntaxError{Line: lineno, Msg: "could not find '=' or ':'"}
			}
			name := strings.TrimRightFunc(line[:i], unicode.IsSpace)
			if name == "" {
				return nil, &SyntaxError{Line: lineno, Msg: "property name missing"}
			}
			prop := Property{
				Name:  name,
				Value: strings.TrimLeftFunc(line[i+1:], unicode.IsSpace),
			}
			if curr == nil {
				f.Preamble = append(f.Preamble, prop)
			} else {
				curr.Properties = append(curr.Properties, prop)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFile opens and parses the file at the given path. Errors from opening
// or reading the file are returned unwrapped so that callers can inspect them
// with os.IsNotExist and friends. Syntax errors are returned as *SyntaxError.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data))
}

// IsRoot reports whether the file declares itself as the outermost file to
// consider: any property named "root" whose value is "true", compared
// case-insensitively, in the preamble or in any section.
func (f *File) IsRoot() bool {
	if f == nil {
		return false
	}
	if isRoot(f.Preamble) {
		return true
	}
	for _, s := range f.Sections {
		if isRoot(s.Properties) {
			return true
		}
	}
	return false
}

func isRoot(props []Property) bool {
	for _, p := range props {
		if strings.EqualFold(p.Name, "root") && strings.EqualFold(p.Value, "true") {
			return true
		}
	}
	return false
}

// Get returns the last value associated with the given name in sections
// with the given pattern. Passing an empty pattern searches the preamble.
// Names are compared case-insensitively. If there are no values associated
// with the name, Get returns the empty string.
func (f *File) Get(pattern, name string) string {
	if f == nil {
		return ""
	}
	if pattern == "" {
		v, _ := lookup(f.Preamble, name)
		return v
	}
	for i := len(f.Sections) - 1; i >= 0; i-- {
		if f.Sections[i].Pattern != pattern {
			continue
		}
		if v, ok := lookup(f.Sections[i].Properties, name); ok {
			return v
		}
	}
	return ""
}

// Get returns the last value associated with the given name in the section,
// compared case-insensitively.
func (sect Section) Get(name string) (_ string, ok bool) {
	return lookup(sect.Properties, name)
}

func lookup(props []Property, name string) (_ string, ok bool) {
	for i := len(props) - 1; i >= 0; i-- {
		if strings.EqualFold(props[i].Name, name) {
			return props[i].Value, true
		}
	}
	return "", false
}

// MarshalText serializes the file in canonical form: the preamble followed
// by each section, with one "name = value" pair per line. Comments from the
// original file are not preserved.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var buf []byte
	buf = appendProperties(buf, f.Preamble)
	for _, s := range f.Sections {
		if len(buf) > 0 {
			buf = append(buf, '\n')
		}
		if strings.ContainsAny(s.Pattern, "\r\n") {
			return nil, fmt.Errorf("marshal ini file: section pattern %q contains a line break", s.Pattern)
		}
		buf = append(buf, '[')
		buf = append(buf, s.Pattern...)
		buf = append(buf, "]\n"...)
		buf = appendProperties(buf, s.Properties)
	}
	return buf, nil
}

func appendProperties(buf []byte, props []Property) []byte {
	for _, p := range props {
		buf = append(buf, p.Name...)
		buf = append(buf, " = "...)
		buf = append(buf, p.Value...)
		buf = append(buf, '\n')
	}
	return buf
}

// UnmarshalText parses the data, replacing any properties or sections in f.
func (f *File) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
