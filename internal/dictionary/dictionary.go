// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dictionary provides the set of known words used for spell
// checking and the word list sources it is built from.
package dictionary

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultPath is the location of the system word list.
const DefaultPath = "/usr/share/dict/words"

// Dictionary is an immutable set of known words. Words are held and
// compared in their normalized form, so membership is insensitive to
// case.
type Dictionary struct {
	words map[string]struct{}
}

// New returns a dictionary holding the provided words.
func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	d.add(words...)
	return d
}

func (d *Dictionary) add(words ...string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		d.words[Normalize(w)] = struct{}{}
	}
}

// Normalize returns the form of word that is stored and compared by a
// Dictionary: NFC composed and case folded.
func Normalize(word string) string {
	return cases.Fold().String(norm.NFC.String(word))
}

// Contains returns whether word is in the dictionary. A nil dictionary
// contains no words.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[Normalize(word)]
	return ok
}

// Extend returns a copy of the dictionary with the provided words added.
// The receiver is not altered.
func (d *Dictionary) Extend(words ...string) *Dictionary {
	if len(words) == 0 && d != nil {
		return d
	}
	n := len(words)
	if d != nil {
		n += len(d.words)
	}
	ext := &Dictionary{words: make(map[string]struct{}, n)}
	if d != nil {
		for w := range d.words {
			ext.words[w] = struct{}{}
		}
	}
	ext.add(words...)
	return ext
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns the normalized words of the dictionary in sorted order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
