// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kortschak/ct"
	"github.com/mattn/go-runewidth"
)

// Printer writes diagnostics as text.
//
// Each diagnostic is written as
//
//	<location>: misspelled word[s]: <words>
//	<location>: <first source line>
//
// and if Show is set, followed by a line marking the span under the source
// line.
type Printer struct {
	w    io.Writer
	show bool

	// warn is the decoration for incorrectly spelled words.
	warn func(string) string
}

// NewPrinter returns a Printer writing to w. If show is true the span is
// marked under the source line. If color is true the unknown words in the
// source line are highlighted.
func NewPrinter(w io.Writer, show, color bool) *Printer {
	p := &Printer{w: w, show: show}
	if color {
		paint := (ct.Italic | ct.Fg(ct.BoldRed)).Paint
		p.warn = func(s string) string { return fmt.Sprint(paint(s)) }
	}
	return p
}

// Print writes d.
func (p *Printer) Print(d Diagnostic) error {
	_, err := fmt.Fprintf(p.w, "%s: %s\n", d.Location, d.Message())
	if err != nil || !d.HasLine {
		return err
	}
	end := spanEnd(d)
	_, err = fmt.Fprintf(p.w, "%s: %s\n", d.Location, p.highlight(d, end))
	if err != nil || !p.show {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s\n", marker(d, end))
	return err
}

// spanEnd returns the offset in d.Line of the end of the span, clamped to
// the line.
func spanEnd(d Diagnostic) int {
	end := len(d.Line)
	if d.Span.End > d.Span.Start {
		n := d.Column + int(d.Span.End-d.Span.Start)
		if n < end {
			end = n
		}
	}
	return end
}

// marker returns a line that marks the span of d under its rendered
// source line, preserving tab alignment.
func marker(d Diagnostic, end int) string {
	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(d.Location)+len(": ")))
	col := max(0, min(d.Column, len(d.Line)))
	for _, r := range d.Line[:col] {
		if r == '\t' {
			buf.WriteByte('\t')
			continue
		}
		buf.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	buf.WriteString(strings.Repeat("^", max(1, runewidth.StringWidth(d.Line[col:max(col, end)]))))
	return buf.String()
}

// highlight returns the source line of d with the unknown words inside the
// span decorated.
func (p *Printer) highlight(d Diagnostic, end int) string {
	if p.warn == nil || d.Column < 0 || d.Column >= end {
		return d.Line
	}
	type interval struct{ start, end int }
	var marks []interval
	seg := d.Line[d.Column:end]
	for _, w := range d.Words {
		if w == "" {
			continue
		}
		for off := 0; off < len(seg); {
			i := strings.Index(seg[off:], w)
			if i < 0 {
				break
			}
			start := d.Column + off + i
			marks = append(marks, interval{start, start + len(w)})
			off += i + len(w)
		}
	}
	if len(marks) == 0 {
		return d.Line
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	var buf strings.Builder
	last := 0
	for _, m := range marks {
		if m.start < last {
			// Overlapping match.
			if m.end <= last {
				continue
			}
			m.start = last
		}
		buf.WriteString(d.Line[last:m.start])
		buf.WriteString(p.warn(d.Line[m.start:m.end]))
		last = m.end
	}
	buf.WriteString(d.Line[last:])
	return buf.String()
}
