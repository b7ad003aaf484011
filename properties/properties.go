// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package properties describes the EditorConfig properties that receive
// value normalization during resolution. The table is data: callers may
// load their own instead of using Default.
package properties

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/yourbase/editorconfig/version"
	"gopkg.in/yaml.v3"
)

// A Property describes one recognized property.
type Property struct {
	// Name is the lowercase property name.
	Name string `yaml:"name"`
	// Lowercase is true if the property's values are case-insensitive.
	Lowercase bool `yaml:"lowercase"`
	// Since is the first version in which the property is recognized.
	// The zero version means always.
	Since version.Version `yaml:"since"`
}

// A Table is a set of recognized properties. Tables are read-only once
// loaded and safe for concurrent use. A nil *Table recognizes nothing.
type Table struct {
	props map[string]Property
}

type document struct {
	Properties []Property `yaml:"properties"`
}

// Load decodes a YAML property table. Unknown fields are rejected.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load property table: %w", err)
	}
	t := &Table{props: make(map[string]Property, len(doc.Properties))}
	for i, p := range doc.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("load property table: entry %d: missing name", i)
		}
		p.Name = strings.ToLower(p.Name)
		if _, dup := t.props[p.Name]; dup {
			return nil, fmt.Errorf("load property table: duplicate property %q", p.Name)
		}
		t.props[p.Name] = p
	}
	return t, nil
}

// New returns a table holding the given properties. Names are lowercased;
// later entries replace earlier ones with the same name.
func New(props ...Property) *Table {
	t := &Table{props: make(map[string]Property, len(props))}
	for _, p := range props {
		p.Name = strings.ToLower(p.Name)
		t.props[p.Name] = p
	}
	return t
}

//go:embed properties.yaml
var embeddedTable string

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table of standard EditorConfig properties.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(strings.NewReader(embeddedTable))
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Lookup returns the property with the given name, compared
// case-insensitively.
func (t *Table) Lookup(name string) (_ Property, ok bool) {
	if t == nil {
		return Property{}, false
	}
	p, ok := t.props[strings.ToLower(name)]
	return p, ok
}

// Recognized reports whether the named property is known at version v.
func (t *Table) Recognized(name string, v version.Version) bool {
	p, ok := t.Lookup(name)
	return ok && !v.Less(p.Since)
}

// Normalize returns value as it should be stored for the named property when
// resolving for version v: lowercased if the property is recognized at v and
// case-insensitive, otherwise unchanged.
func (t *Table) Normalize(name, value string, v version.Version) string {
	p, ok := t.Lookup(name)
	if !ok || !p.Lowercase || !t.Recognized(name, v) {
		return value
	}
	return strings.ToLower(value)
}

// Len returns the number of properties in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.props)
}
