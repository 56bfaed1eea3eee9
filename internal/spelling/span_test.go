// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestNewSpan(t *testing.T) {
	got, err := NewSpan(3, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Span{Start: 3, End: 9}); got != want {
		t.Errorf("unexpected span: got:%v want:%v", got, want)
	}

	_, err = NewSpan(-1, 2)
	if !errors.Is(err, ErrSpanOverflow) {
		t.Errorf("expected overflow error for negative start, got:%v", err)
	}
	if strconv.IntSize == 64 {
		end := uint64(math.MaxUint32) + 1
		_, err = NewSpan(0, int(end))
		if !errors.Is(err, ErrSpanOverflow) {
			t.Errorf("expected overflow error for large end, got:%v", err)
		}
	}
}

func TestSpanCompare(t *testing.T) {
	for _, test := range []struct {
		a, b Span
		want int
	}{
		{a: Span{1, 2}, b: Span{1, 2}, want: 0},
		{a: Span{1, 2}, b: Span{2, 3}, want: -1},
		{a: Span{2, 3}, b: Span{1, 9}, want: 1},
		{a: Span{1, 2}, b: Span{1, 5}, want: -1},
		{a: Span{1, 5}, b: Span{1, 2}, want: 1},
	} {
		if got := test.a.Compare(test.b); got != test.want {
			t.Errorf("unexpected comparison of %v with %v: got:%d want:%d", test.a, test.b, got, test.want)
		}
	}
}
