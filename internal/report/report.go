// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report orders collected misspellings by source position and
// renders them as diagnostics.
package report

import (
	"slices"
	"strings"

	"github.com/kortschak/spellck/internal/spelling"
)

// Entry is the set of unknown words found at a span.
type Entry struct {
	Span  spelling.Span
	Words []string // Sorted.
}

// Order returns the non-empty entries of m in ascending order of span
// start, with ties broken by ascending span end.
func Order(m spelling.Misspellings) []Entry {
	entries := make([]Entry, 0, len(m))
	for sp, words := range m {
		if len(words) == 0 {
			continue
		}
		entries = append(entries, Entry{Span: sp, Words: words.Sorted()})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return a.Span.Compare(b.Span)
	})
	return entries
}

// Resolver maps spans to human-readable source information.
type Resolver interface {
	// Location returns a label for the start of the span.
	Location(spelling.Span) string

	// FirstLine returns the first source line covered by
	// the span and the byte offset of the span start within
	// it. If no source is available ok is false.
	FirstLine(spelling.Span) (line string, col int, ok bool)
}

// Diagnostic is a rendered entry.
type Diagnostic struct {
	Span     spelling.Span
	Location string
	Words    []string

	// Line is the first source line of the span
	// and Column is the byte offset of the span
	// within Line. They are only valid if HasLine
	// is true.
	Line    string
	Column  int
	HasLine bool
}

// Message returns the diagnostic message for the diagnostic's words.
func (d Diagnostic) Message() string { return Message(d.Words) }

// Diagnose resolves the ordered entries into diagnostics.
func Diagnose(entries []Entry, r Resolver) []Diagnostic {
	diags := make([]Diagnostic, 0, len(entries))
	for _, e := range entries {
		d := Diagnostic{
			Span:     e.Span,
			Location: r.Location(e.Span),
			Words:    e.Words,
		}
		d.Line, d.Column, d.HasLine = r.FirstLine(e.Span)
		diags = append(diags, d)
	}
	return diags
}

// Message returns a description of the misspelled words.
func Message(words []string) string {
	if len(words) == 1 {
		return "misspelled word: " + words[0]
	}
	return "misspelled words: " + strings.Join(words, ", ")
}

// Summary is the aggregate result of checking a set of files.
type Summary struct {
	Files int // Files checked.
	Spans int // Spans with misspellings.
}

// Add records the diagnostics for one file.
func (s *Summary) Add(diags []Diagnostic) {
	s.Files++
	s.Spans += len(diags)
}

// Mistakes returns whether any file had a misspelling.
func (s Summary) Mistakes() bool { return s.Spans != 0 }
