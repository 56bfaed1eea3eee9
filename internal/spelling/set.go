// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import "sort"

// Set is a set of words.
type Set map[string]struct{}

// NewSet returns a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add adds w to the set.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Union adds all the words of o to the receiver.
func (s Set) Union(o Set) {
	for w := range o {
		s[w] = struct{}{}
	}
}

// Sorted returns the words of the set in lexical order.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
