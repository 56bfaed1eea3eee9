// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import (
	"cmp"
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrSpanOverflow is returned by NewSpan when an offset cannot be
// represented.
var ErrSpanOverflow = errors.New("span offset overflow")

// Span is a byte range within a single source file. Spans order by start
// offset and then by end offset.
type Span struct {
	Start uint32 // Inclusive.
	End   uint32 // Exclusive.
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) (Span, error) {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return Span{}, fmt.Errorf("%w: start %d", ErrSpanOverflow, start)
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return Span{}, fmt.Errorf("%w: end %d", ErrSpanOverflow, end)
	}
	return Span{Start: s, End: e}, nil
}

// Compare returns -1, 0 or +1 depending on whether s orders before, with
// or after o.
func (s Span) Compare(o Span) int {
	if c := cmp.Compare(s.Start, o.Start); c != 0 {
		return c
	}
	return cmp.Compare(s.End, o.End)
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
