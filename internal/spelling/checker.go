// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spelling classifies the words of identifiers and documentation
// as known or unknown, and collects the unknown words found in a syntax
// tree by source span.
package spelling

import (
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/kortschak/spellck/internal/dictionary"
	"github.com/kortschak/spellck/internal/words"
)

// Options configures a Checker. The zero value checks every word against
// the dictionary and nothing else.
type Options struct {
	// Apostrophes keeps apostrophes within words and
	// accepts words that are known once a possessive or
	// contraction suffix is removed.
	Apostrophes bool

	// MaskURLs removes URLs from text before it is split
	// into words.
	MaskURLs bool

	// Heuristics are consulted before the dictionary. A
	// word accepted by any heuristic is not reported.
	Heuristics []Heuristic
}

// Checker checks names and text against a dictionary.
type Checker struct {
	dict     *dictionary.Dictionary
	splitter words.Splitter
	opts     Options
}

// NewChecker returns a new Checker using the provided dictionary.
func NewChecker(d *dictionary.Dictionary, opts Options) *Checker {
	return &Checker{
		dict:     d,
		splitter: words.Splitter{Apostrophes: opts.Apostrophes},
		opts:     opts,
	}
}

// WithDictionary returns a copy of the checker that uses d.
func (c *Checker) WithDictionary(d *dictionary.Dictionary) *Checker {
	cp := *c
	cp.dict = d
	return &cp
}

// Dictionary returns the checker's dictionary.
func (c *Checker) Dictionary() *dictionary.Dictionary { return c.dict }

// Check returns the words of text that are not known. The result is empty
// if all the words are known.
func (c *Checker) Check(text string) Set {
	if c.opts.MaskURLs {
		text = maskURLs(text)
	}
	var unknown Set
	for _, w := range c.splitter.Split(text) {
		if c.isCorrect(w) {
			continue
		}
		if unknown == nil {
			unknown = make(Set)
		}
		unknown.Add(w)
	}
	return unknown
}

// Check returns the words of text that are not in d.
func Check(text string, d *dictionary.Dictionary) Set {
	return NewChecker(d, Options{}).Check(text)
}

func (c *Checker) isCorrect(word string) bool {
	for _, h := range c.opts.Heuristics {
		if h.Accept(word) {
			return true
		}
	}
	if c.dict.Contains(word) {
		return true
	}
	if c.opts.Apostrophes {
		if stem, ok := trimSuffix(word); ok {
			return c.isCorrect(stem)
		}
	}
	return false
}

// suffixes are the possessive and contraction suffixes removed from words
// when apostrophes are retained.
var suffixes = []string{"'s", "'d", "'ed", "'th", "’s", "’d", "’ed", "’th"}

func trimSuffix(word string) (string, bool) {
	for _, s := range suffixes {
		if len(word) > len(s) && strings.HasSuffix(word, s) {
			return strings.TrimSuffix(word, s), true
		}
	}
	return word, false
}

// urls is used for masking URLs in Check.
var urls = xurls.Strict()

// maskURLs replaces URLs in text with spaces.
func maskURLs(text string) string {
	return urls.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
}
