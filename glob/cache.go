// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package glob

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is a reasonable number of compiled patterns to keep for
// a single project tree.
const DefaultCacheSize = 1000

type cacheKey struct {
	pattern string
	dir     string
}

// A Cache holds recently compiled Globs keyed by pattern and directory. It is
// safe for concurrent use. A nil *Cache compiles every pattern afresh.
type Cache struct {
	lru *lru.Cache[cacheKey, *Glob]
}

// NewCache returns a cache that holds at most size compiled patterns.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New[cacheKey, *Glob](size)
	if err != nil {
		return nil, fmt.Errorf("new glob cache: %w", err)
	}
	return &Cache{lru: l}, nil
}

// Compile works like the package-level Compile, but returns a previously
// compiled Glob for the same pattern and directory if one is cached.
func (c *Cache) Compile(pattern, dir string) *Glob {
	if c == nil {
		return Compile(pattern, dir)
	}
	key := cacheKey{pattern, dir}
	if g, ok := c.lru.Get(key); ok {
		return g
	}
	g := Compile(pattern, dir)
	c.lru.Add(key, g)
	return g
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
