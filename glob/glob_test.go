// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package glob

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.rs", "lib.rs", true},
		{"*.rs", "src/lib.rs", false},
		{"**.rs", "src/lib.rs", true},
		{"**.rs", "lib.rs", true},
		{"src/*.rs", "src/lib.rs", true},
		{"file{1,2}.txt", "file1.txt", true},
		{"file{1,2}.txt", "file2.txt", true},
		{"file{1,2}.txt", "file3.txt", false},
		{"[0-9].txt", "5.txt", true},
		{"[0-9].txt", "a.txt", false},
		{"?", "/", false},
		{"[!a]", "/", false},
		{"[abc", "a", false},
		{"{[,a],b}.c", ",.c", true},
		{"{[,a],b}.c", "a.c", true},
		{"{[,a],b}.c", "b.c", true},
		{"{[,a],b}.c", "x.c", false},
		{"{[}],b}", "}", true},
	}
	for _, test := range tests {
		if got := Match(test.pattern, test.name); got != test.want {
			t.Errorf("Match(%q, %q) = %t; want %t", test.pattern, test.name, got, test.want)
		}
	}
}

func TestSectionPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		matches []string
		misses  []string
	}{
		{
			name:    "Star",
			pattern: "*",
			matches: []string{"a.txt", "a/b.txt", "a/b/.hidden"},
		},
		{
			name:    "Basename",
			pattern: "*.rs",
			matches: []string{"lib.rs", "src/lib.rs", "a/b/c/main.rs", ".rs"},
			misses:  []string{"lib.rsx", "lib.rs/x", "lib.RS"},
		},
		{
			name:    "GlobstarBasename",
			pattern: "**.rs",
			matches: []string{"lib.rs", "src/lib.rs"},
			misses:  []string{"lib.go"},
		},
		{
			name:    "Alternation",
			pattern: "file{1,2}.txt",
			matches: []string{"file1.txt", "file2.txt", "sub/file2.txt"},
			misses:  []string{"file3.txt", "file12.txt", "file.txt"},
		},
		{
			name:    "AlternationOfGlobs",
			pattern: "*.{js,ts}",
			matches: []string{"app.js", "lib/app.ts"},
			misses:  []string{"app.go", "app.jsx"},
		},
		{
			name:    "NestedAlternation",
			pattern: "{a,{b,c}}.go",
			matches: []string{"a.go", "b.go", "c.go"},
			misses:  []string{"d.go", "bc.go"},
		},
		{
			name:    "AlternationWithStar",
			pattern: "{a,b*}.go",
			matches: []string{"a.go", "b.go", "bxyz.go", "b/bx.go"},
			misses:  []string{"ab.go", "b/x.go"},
		},
		{
			name:    "EmptyAlternative",
			pattern: "main{,_test}.go",
			matches: []string{"main.go", "main_test.go"},
			misses:  []string{"main_.go"},
		},
		{
			name:    "Class",
			pattern: "[0-9].txt",
			matches: []string{"5.txt", "0.txt", "d/9.txt"},
			misses:  []string{"a.txt", "10.txt"},
		},
		{
			name:    "NegatedClass",
			pattern: "[!a].c",
			matches: []string{"b.c", "z.c"},
			misses:  []string{"a.c", "ab.c"},
		},
		{
			name:    "CaretNegatedClass",
			pattern: "[^a].c",
			matches: []string{"b.c"},
			misses:  []string{"a.c"},
		},
		{
			name:    "ClassLeadingBracket",
			pattern: "[]a].c",
			matches: []string{"].c", "a.c"},
			misses:  []string{"b.c"},
		},
		{
			name:    "ClassLiteralDash",
			pattern: "[a-].c",
			matches: []string{"a.c", "-.c"},
			misses:  []string{"b.c"},
		},
		{
			name:    "ClassLiteralBang",
			pattern: "[a!].c",
			matches: []string{"a.c", "!.c"},
			misses:  []string{"b.c"},
		},
		{
			name:    "ClassWithSlashIsLiteral",
			pattern: "[a/b].txt",
			matches: []string{"[a/b].txt"},
			misses:  []string{"a.txt", "/.txt"},
		},
		{
			name:    "Question",
			pattern: "?.c",
			matches: []string{"a.c", "é.c"},
			misses:  []string{"ab.c", ".c"},
		},
		{
			name:    "NumericRange",
			pattern: "file{1..3}.txt",
			matches: []string{"file1.txt", "file3.txt", "file01.txt", "file003.txt"},
			misses:  []string{"file0.txt", "file4.txt", "file-1.txt", "filea.txt", "file.txt"},
		},
		{
			name:    "NegativeRange",
			pattern: "{-5..5}.txt",
			matches: []string{"-3.txt", "0.txt", "5.txt", "-05.txt"},
			misses:  []string{"6.txt", "-6.txt", "-.txt"},
		},
		{
			name:    "DescendingRange",
			pattern: "{10..1}",
			matches: []string{"1", "5", "10"},
			misses:  []string{"0", "11"},
		},
		{
			name:    "Escape",
			pattern: `\*.txt`,
			matches: []string{"*.txt"},
			misses:  []string{"a.txt"},
		},
		{
			name:    "EscapedBraces",
			pattern: `\{a,b\}.txt`,
			matches: []string{"{a,b}.txt"},
			misses:  []string{"a.txt"},
		},
		{
			name:    "EmptyBraces",
			pattern: "{}.txt",
			matches: []string{"{}.txt"},
			misses:  []string{".txt"},
		},
		{
			name:    "SingleWordBraces",
			pattern: "{word}.txt",
			matches: []string{"{word}.txt"},
			misses:  []string{"word.txt"},
		},
		{
			name:    "StrayClosingBrace",
			pattern: "a}.txt",
			matches: []string{"a}.txt"},
		},
		{
			name:    "LeadingSlash",
			pattern: "/top.txt",
			matches: []string{"top.txt"},
			misses:  []string{"sub/top.txt"},
		},
		{
			name:    "Anchored",
			pattern: "sub/*.c",
			matches: []string{"sub/a.c"},
			misses:  []string{"sub/x/a.c", "other/sub/a.c", "a.c"},
		},
		{
			name:    "ZeroOrMoreDirectories",
			pattern: "a/**/b",
			matches: []string{"a/b", "a/x/b", "a/x/y/b"},
			misses:  []string{"ab", "a/xb", "x/a/b"},
		},
		{
			name:    "AnyDepth",
			pattern: "**/vendor/**",
			matches: []string{"vendor/x.go", "a/vendor/b/c.go"},
			misses:  []string{"vendors/x.go", "a/vendor"},
		},
		{
			name:    "CaseSensitive",
			pattern: "*.TXT",
			matches: []string{"A.TXT"},
			misses:  []string{"a.txt"},
		},
		{
			name:    "UnclosedClass",
			pattern: "[abc",
			misses:  []string{"a", "[abc"},
		},
		{
			name:    "UnclosedBrace",
			pattern: "{a,b",
			misses:  []string{"a", "{a,b"},
		},
		{
			name:    "EmptyPattern",
			pattern: "",
			misses:  []string{"a", "a/b"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := Compile(test.pattern, "")
			for _, name := range test.matches {
				if !g.MatchRelative(name) {
					t.Errorf("Compile(%q).MatchRelative(%q) = false; want true", test.pattern, name)
				}
			}
			for _, name := range test.misses {
				if g.MatchRelative(name) {
					t.Errorf("Compile(%q).MatchRelative(%q) = true; want false", test.pattern, name)
				}
			}
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, pattern := range []string{"[abc", "{a,b", "x{y", "[!"} {
		if g := Compile(pattern, ""); !g.Malformed() {
			t.Errorf("Compile(%q).Malformed() = false; want true", pattern)
		}
	}
	for _, pattern := range []string{"*", "a}", "{}", "[a/b]", `\[`} {
		if g := Compile(pattern, ""); g.Malformed() {
			t.Errorf("Compile(%q).Malformed() = true; want false", pattern)
		}
	}
}

func TestGlobMatchPath(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator), "proj")
	g := Compile("*.rs", dir)
	if g.Pattern() != "*.rs" || g.Dir() != dir {
		t.Errorf("Compile(...) = {%q, %q}; want {%q, %q}", g.Pattern(), g.Dir(), "*.rs", dir)
	}
	tests := []struct {
		target string
		want   bool
	}{
		{filepath.Join(dir, "lib.rs"), true},
		{filepath.Join(dir, "src", "lib.rs"), true},
		{filepath.Join(dir, "lib.go"), false},
		{filepath.Join(string(filepath.Separator), "other", "lib.rs"), false},
		{dir, false},
	}
	for _, test := range tests {
		if got := g.Match(test.target); got != test.want {
			t.Errorf("Compile(%q, %q).Match(%q) = %t; want %t", "*.rs", dir, test.target, got, test.want)
		}
	}

	anchored := Compile("/src/*.rs", dir)
	if !anchored.Match(filepath.Join(dir, "src", "lib.rs")) {
		t.Error("anchored pattern did not match file in its directory")
	}
	if anchored.Match(filepath.Join(dir, "a", "src", "lib.rs")) {
		t.Error("anchored pattern matched file in a nested directory")
	}
}

func TestMatchManyStars(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{strings.Repeat("*a", 12) + "b", strings.Repeat("a", 40), false},
		{strings.Repeat("*a", 12), strings.Repeat("a", 40), true},
		{strings.Repeat("**a", 12) + "b", strings.Repeat("a/", 20), false},
		{strings.Repeat("{*a,*b}", 12) + "c", strings.Repeat("ab", 20), false},
		{strings.Repeat("{*a,*b}", 12), strings.Repeat("ab", 20), true},
	}
	for _, test := range tests {
		start := time.Now()
		got := Compile(test.pattern, "").MatchRelative(test.name)
		elapsed := time.Since(start)
		if got != test.want {
			t.Errorf("Compile(%q, \"\").MatchRelative(%q) = %t; want %t", test.pattern, test.name, got, test.want)
		}
		if elapsed > 2*time.Second {
			t.Errorf("Compile(%q, \"\").MatchRelative(%q) took %v", test.pattern, test.name, elapsed)
		}
	}
}
