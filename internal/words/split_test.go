// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package words

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var splitTests = []struct {
	text        string
	apostrophes bool
	want        []string
}{
	{text: "", want: nil},
	{text: "___", want: nil},
	{text: "foo_bar", want: []string{"foo", "bar"}},
	{text: "fooBar", want: []string{"foo", "Bar"}},
	{text: "FooBarBaz", want: []string{"Foo", "Bar", "Baz"}},
	{text: "HTTPServer", want: []string{"HTTP", "Server"}},
	{text: "v2Beta", want: []string{"v", "Beta"}},
	{text: "int64", want: []string{"int", "64"}},
	{text: "a", want: []string{"a"}},
	{text: "7", want: nil},
	{text: "x²", want: []string{"x"}},
	{text: "area½", want: []string{"area"}},
	{text: "parseHTTPResponse2XX", want: []string{"parse", "HTTP", "Response", "XX"}},
	{text: "kebab-case words", want: []string{"kebab", "case", "words"}},
	{text: "Hello, world! (x)", want: []string{"Hello", "world", "x"}},
	{text: "ÉcoleNormale", want: []string{"École", "Normale"}},
	{text: "nai\u0308veCode", want: []string{"nai\u0308ve", "Code"}},
	{text: "line\tone\nline two", want: []string{"line", "one", "line", "two"}},
	{text: "a+b=c", want: []string{"a", "b", "c"}},

	{text: "don't stop", want: []string{"don", "t", "stop"}},
	{text: "don't stop Go's 'quoted'", apostrophes: true, want: []string{"don't", "stop", "Go's", "quoted"}},
	{text: "HTTP's", apostrophes: true, want: []string{"HTTP's"}},
	{text: "it’s", apostrophes: true, want: []string{"it’s"}},
}

func TestSplit(t *testing.T) {
	for _, test := range splitTests {
		got := Splitter{Apostrophes: test.apostrophes}.Split(test.text)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("unexpected result for %q:\n%s", test.text, cmp.Diff(test.want, got))
		}
	}
}

func TestSplitKeepsDigitRuns(t *testing.T) {
	got := Splitter{}.runs("v2Beta")
	want := []string{"v", "2", "Beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected runs:\n%s", cmp.Diff(want, got))
	}
}

func TestSplitIdempotent(t *testing.T) {
	for _, test := range splitTests {
		s := Splitter{Apostrophes: test.apostrophes}
		first := s.Split(test.text)
		again := s.Split(strings.Join(first, "_"))
		if !reflect.DeepEqual(first, again) {
			t.Errorf("split of %q is not stable when rejoined:\n%s", test.text, cmp.Diff(first, again))
		}
	}
}
