// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package words splits identifiers and free text into the words that are
// subject to spell checking.
package words

import (
	"unicode"
	"unicode/utf8"
)

// Splitter splits identifiers and free text into words.
//
// Text is first split on white space, punctuation, symbols and control
// characters; this includes underscores and hyphens. Each remaining run is
// then split on case and digit transitions: a lower case letter followed by
// an upper case letter starts a new word, a run of upper case letters
// followed by a lower case letter gives its last upper case letter to the
// following word, and a change into or out of a run of digits starts a new
// word. Single digit words are dropped. The casing of words is preserved.
type Splitter struct {
	// Apostrophes keeps an apostrophe that is between
	// two letters inside the word, so that "don't" and
	// "Go's" are returned as single words.
	Apostrophes bool
}

// Split splits text into words using the zero Splitter.
func Split(text string) []string {
	return Splitter{}.Split(text)
}

// Split returns the words in text. It never returns an empty word.
func (s Splitter) Split(text string) []string {
	var words []string
	for _, w := range s.runs(text) {
		if isLoneDigit(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// class is the word boundary class of a rune.
type class int

const (
	none  class = iota
	lower       // Lower case and uncased letters.
	upper       // Upper and title case letters.
	digit
	mark // Combining marks; never a boundary.
	join // Kept apostrophes; never a boundary and reset case state.
)

// runs returns the separator, case and digit delimited runs of text,
// including single digit runs.
func (s Splitter) runs(text string) []string {
	var (
		runs     []string
		start    = -1 // Start of the current run, or -1 if between runs.
		prev     class
		prevAt   int // Offset of the previous cased or digit rune in the run.
		upperRun int // Length of the upper case run ending at prevAt.
		last     rune
	)
	for i, width := 0, 0; i < len(text); i += width {
		var r rune
		r, width = utf8.DecodeRuneInString(text[i:])
		if s.isSeparator(last, r, text[i+width:]) {
			if start >= 0 {
				runs = append(runs, text[start:i])
				start = -1
			}
			last = r
			continue
		}
		last = r

		c := classOf(r, s.Apostrophes)
		if start < 0 {
			start, prev, prevAt, upperRun = i, c, i, 0
			switch c {
			case upper:
				upperRun = 1
			case mark, join:
				prev = none
			}
			continue
		}

		switch c {
		case mark:
			continue
		case join:
			prev, upperRun = none, 0
			continue
		}
		switch {
		case prev == none:
		case (c == digit) != (prev == digit), prev == lower && c == upper:
			runs = append(runs, text[start:i])
			start = i
		case prev == upper && c == lower && upperRun > 1:
			runs = append(runs, text[start:prevAt])
			start = prevAt
		}
		if c == upper {
			if prev == upper {
				upperRun++
			} else {
				upperRun = 1
			}
		} else {
			upperRun = 0
		}
		prev, prevAt = c, i
	}
	if start >= 0 {
		runs = append(runs, text[start:])
	}
	return runs
}

// isSeparator returns whether curr separates words given the rune before
// it and the text following it.
func (s Splitter) isSeparator(last, curr rune, next string) bool {
	if s.Apostrophes && isApostrophe(curr) {
		n, _ := utf8.DecodeRuneInString(next)
		return !unicode.IsLetter(last) || !unicode.IsLetter(n)
	}
	return unicode.IsSpace(curr) || unicode.IsPunct(curr) || unicode.IsSymbol(curr) || unicode.IsControl(curr)
}

func classOf(r rune, apostrophes bool) class {
	switch {
	case apostrophes && isApostrophe(r):
		return join
	case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me):
		return mark
	case unicode.IsUpper(r), unicode.IsTitle(r):
		return upper
	case unicode.IsNumber(r):
		return digit
	default:
		return lower
	}
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// isLoneDigit returns whether w is a single numeric rune.
func isLoneDigit(w string) bool {
	r, n := utf8.DecodeRuneInString(w)
	return n == len(w) && unicode.IsNumber(r)
}
