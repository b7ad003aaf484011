// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package glob

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// match reports whether all of s is matched by ns.
func match(ns []node, s string) bool {
	m := &matcher{
		memo:   make(map[state]bool),
		frames: make(map[frameKey]*frame),
	}
	return m.match(ns, nil, s)
}

// A matcher evaluates a pattern against one input string. Every string it
// sees is a suffix of that input, so a state is identified by the nodes left
// to match and the remaining length. Remembering each state's result bounds
// the work by the number of states.
type matcher struct {
	memo   map[state]bool
	frames map[frameKey]*frame
}

// A frame is what remains to be matched after an alternative: the rest of
// the enclosing sequence, then its own continuation. Frames are interned, so
// each position in the pattern has exactly one.
type frame struct {
	ns   []node
	next *frame
}

// frameKey identifies a node sequence by its first element and length. Node
// slices are never modified after parsing, so this determines its contents.
type frameKey struct {
	first *node
	n     int
	next  *frame
}

type state struct {
	frameKey
	rest int
}

func (m *matcher) push(ns []node, k *frame) *frame {
	if len(ns) == 0 {
		return k
	}
	key := frameKey{first: &ns[0], n: len(ns), next: k}
	if f := m.frames[key]; f != nil {
		return f
	}
	f := &frame{ns: ns, next: k}
	m.frames[key] = f
	return f
}

// match reports whether ns followed by k matches all of s.
func (m *matcher) match(ns []node, k *frame, s string) bool {
	for len(ns) == 0 {
		if k == nil {
			return s == ""
		}
		ns, k = k.ns, k.next
	}
	key := state{frameKey{first: &ns[0], n: len(ns), next: k}, len(s)}
	if result, ok := m.memo[key]; ok {
		return result
	}
	result := m.step(ns, k, s)
	m.memo[key] = result
	return result
}

// step matches the first node of ns and continues with the rest.
func (m *matcher) step(ns []node, k *frame, s string) bool {
	n, rest := &ns[0], ns[1:]
	switch n.kind {
	case literalNode:
		return strings.HasPrefix(s, n.lit) && m.match(rest, k, s[len(n.lit):])
	case anyNode:
		r, size := utf8.DecodeRuneInString(s)
		return size > 0 && r != '/' && m.match(rest, k, s[size:])
	case classNode:
		r, size := utf8.DecodeRuneInString(s)
		return size > 0 && n.class.matches(r) && m.match(rest, k, s[size:])
	case starNode:
		for i, r := range s {
			if m.match(rest, k, s[i:]) {
				return true
			}
			if r == '/' {
				return false
			}
		}
		return m.match(rest, k, "")
	case globstarNode:
		for i := range s {
			if m.match(rest, k, s[i:]) {
				return true
			}
		}
		return m.match(rest, k, "")
	case dirsNode:
		if m.match(rest, k, s) {
			return true
		}
		for i := 0; i < len(s); i++ {
			if s[i] == '/' && m.match(rest, k, s[i+1:]) {
				return true
			}
		}
		return false
	case altNode:
		after := m.push(rest, k)
		for _, alt := range n.alts {
			if m.match(alt, after, s) {
				return true
			}
		}
		return false
	case rangeNode:
		return m.matchRange(n.lo, n.hi, rest, k, s)
	default:
		panic("unreachable")
	}
}

// matchRange matches an optionally signed decimal integer in [lo, hi] at the
// start of s, followed by rest and k.
func (m *matcher) matchRange(lo, hi int64, rest []node, k *frame, s string) bool {
	start := 0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		start = 1
	}
	for end := start + 1; end <= len(s) && isDigit(s[end-1]); end++ {
		n, err := strconv.ParseInt(s[:end], 10, 64)
		if err != nil {
			// Longer prefixes only grow in magnitude.
			return false
		}
		if lo <= n && n <= hi && m.match(rest, k, s[end:]) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
