// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig

import (
	"strings"

	"github.com/yourbase/editorconfig/version"
)

// behavior is a set of version-gated resolution behaviors.
type behavior uint

const (
	// lowercaseValues folds values of case-insensitive properties using the
	// properties table.
	lowercaseValues behavior = 1 << iota
	// tabWidthFromIndentSize sets tab_width to a numeric indent_size when
	// tab_width is unset.
	tabWidthFromIndentSize
	// indentSizeFromTabWidth replaces indent_size = tab with tab_width when
	// tab_width is set.
	indentSizeFromTabWidth
	// indentSizeTab sets indent_size = tab when indent_style = tab and
	// indent_size is unset.
	indentSizeTab
)

// behaviorTable lists each behavior with the version that introduced it.
var behaviorTable = []struct {
	since    version.Version
	behavior behavior
}{
	{version.Must(0, 9, 0), lowercaseValues},
	{version.Must(0, 9, 0), tabWidthFromIndentSize},
	{version.Must(0, 9, 0), indentSizeFromTabWidth},
	{version.Must(0, 10, 0), indentSizeTab},
}

// behaviorsFor returns the behaviors enabled when resolving for v.
func behaviorsFor(v version.Version) behavior {
	var set behavior
	for _, ent := range behaviorTable {
		if !v.Less(ent.since) {
			set |= ent.behavior
		}
	}
	return set
}

func (set behavior) has(b behavior) bool {
	return set&b != 0
}

// applyDefaults fills in the derived indentation properties.
func applyDefaults(rules RuleSet, set behavior) {
	indentSize, hasIndentSize := rules["indent_size"]
	tabWidth, hasTabWidth := rules["tab_width"]
	if set.has(indentSizeTab) && !hasIndentSize && strings.EqualFold(rules["indent_style"], "tab") {
		indentSize, hasIndentSize = "tab", true
		rules["indent_size"] = indentSize
	}
	isTab := strings.EqualFold(indentSize, "tab")
	if set.has(tabWidthFromIndentSize) && hasIndentSize && !hasTabWidth && !isTab {
		rules["tab_width"] = indentSize
	}
	if set.has(indentSizeFromTabWidth) && isTab && hasTabWidth {
		rules["indent_size"] = tabWidth
	}
}
