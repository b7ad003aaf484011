// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package glob

import (
	"errors"
	"strconv"
	"strings"
)

type nodeKind int

const (
	literalNode  nodeKind = iota // lit
	anyNode                      // ?
	starNode                     // *
	globstarNode                 // **
	dirsNode                     // **/ at the start of a path element
	classNode                    // [seq]
	altNode                      // {a,b}
	rangeNode                    // {lo..hi}
)

type node struct {
	kind  nodeKind
	lit   string
	class *charClass
	alts  [][]node
	lo    int64
	hi    int64
}

type charClass struct {
	negate bool
	ranges []runeRange
}

type runeRange struct {
	lo, hi rune
}

func (c *charClass) matches(r rune) bool {
	if r == '/' {
		return false
	}
	in := false
	for _, rr := range c.ranges {
		if rr.lo <= r && r <= rr.hi {
			in = true
			break
		}
	}
	return in != c.negate
}

var (
	errUnclosedClass = errors.New("unclosed '['")
	errUnclosedBrace = errors.New("unclosed '{'")
)

type parser struct {
	p []rune
}

func parse(pattern string) ([]node, error) {
	ps := &parser{p: []rune(pattern)}
	return ps.seq(0, len(ps.p), true)
}

// seq parses p[start:end]. segStart reports whether start is at the
// beginning of a path element.
func (ps *parser) seq(start, end int, segStart bool) ([]node, error) {
	var nodes []node
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, node{kind: literalNode, lit: lit.String()})
			lit.Reset()
		}
	}
	literal := func(r rune) {
		lit.WriteRune(r)
		segStart = r == '/'
	}

	for i := start; i < end; {
		c := ps.p[i]
		switch c {
		case '\\':
			if i+1 < end {
				literal(ps.p[i+1])
				i += 2
			} else {
				literal('\\')
				i++
			}
		case '?':
			flush()
			nodes = append(nodes, node{kind: anyNode})
			segStart = false
			i++
		case '*':
			j := i
			for j < end && ps.p[j] == '*' {
				j++
			}
			flush()
			switch {
			case j-i == 1:
				nodes = append(nodes, node{kind: starNode})
			case segStart && j < end && ps.p[j] == '/':
				nodes = append(nodes, node{kind: dirsNode})
				j++
				// dirsNode consumes the separator, so the next element
				// starts a path element too.
				i = j
				continue
			default:
				nodes = append(nodes, node{kind: globstarNode})
			}
			segStart = false
			i = j
		case '[':
			class, next, err := ps.class(i, end)
			if err != nil {
				return nil, err
			}
			if class == nil {
				literal('[')
				i++
				continue
			}
			flush()
			nodes = append(nodes, node{kind: classNode, class: class})
			segStart = false
			i = next
		case '{':
			n, next, err := ps.brace(i, end, segStart)
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, n...)
			segStart = false
			i = next
		default:
			literal(c)
			i++
		}
	}
	flush()
	return nodes, nil
}

// class parses the bracket expression starting at p[start] == '['. It returns
// a nil class if the expression contains a '/', in which case the '[' is a
// literal character.
func (ps *parser) class(start, end int) (_ *charClass, next int, _ error) {
	c := new(charClass)
	i := start + 1
	if i < end && (ps.p[i] == '!' || ps.p[i] == '^') {
		c.negate = true
		i++
	}
	first := true
	for ; i < end; i++ {
		r := ps.p[i]
		switch {
		case r == ']' && !first:
			return c, i + 1, nil
		case r == '/':
			return nil, start + 1, nil
		case r == '\\' && i+1 < end:
			i++
			r = ps.p[i]
			if r == '/' {
				return nil, start + 1, nil
			}
		}
		first = false
		hi := r
		if i+2 < end && ps.p[i+1] == '-' && ps.p[i+2] != ']' {
			hi = ps.p[i+2]
			i += 2
			if hi == '\\' && i+1 < end {
				i++
				hi = ps.p[i]
			}
			if hi == '/' {
				return nil, start + 1, nil
			}
		}
		c.ranges = append(c.ranges, runeRange{lo: r, hi: hi})
	}
	return nil, 0, errUnclosedClass
}

// brace parses the brace expression starting at p[start] == '{'.
func (ps *parser) brace(start, end int, segStart bool) (_ []node, next int, _ error) {
	depth := 0
	closing := -1
	var commas []int
scan:
	for i := start; i < end; i++ {
		switch ps.p[i] {
		case '\\':
			i++
		case '[':
			// Commas inside a class do not separate alternatives.
			if class, next, err := ps.class(i, end); err == nil && class != nil {
				i = next - 1
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closing = i
				break scan
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}
	if closing == -1 {
		return nil, 0, errUnclosedBrace
	}
	inner := string(ps.p[start+1 : closing])
	if lo, hi, ok := parseRange(inner); ok {
		return []node{{kind: rangeNode, lo: lo, hi: hi}}, closing + 1, nil
	}
	if len(commas) == 0 {
		body, err := ps.seq(start+1, closing, false)
		if err != nil {
			return nil, 0, err
		}
		n := make([]node, 0, len(body)+2)
		n = append(n, node{kind: literalNode, lit: "{"})
		n = append(n, body...)
		n = append(n, node{kind: literalNode, lit: "}"})
		return n, closing + 1, nil
	}
	alt := node{kind: altNode}
	bounds := append(append([]int{start}, commas...), closing)
	for k := 0; k+1 < len(bounds); k++ {
		branch, err := ps.seq(bounds[k]+1, bounds[k+1], segStart)
		if err != nil {
			return nil, 0, err
		}
		alt.alts = append(alt.alts, branch)
	}
	return []node{alt}, closing + 1, nil
}

// parseRange parses the inside of a numeric range brace, "n1..n2". Bounds
// given in descending order are swapped.
func parseRange(s string) (lo, hi int64, ok bool) {
	i := strings.Index(s, "..")
	if i == -1 {
		return 0, 0, false
	}
	a, b := s[:i], s[i+2:]
	if !isInteger(a) || !isInteger(b) {
		return 0, 0, false
	}
	lo, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.ParseInt(b, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// isInteger reports whether s is an optionally signed run of ASCII digits.
func isInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
