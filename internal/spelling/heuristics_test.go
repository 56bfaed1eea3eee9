// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import "testing"

var heuristicTests = []struct {
	h    Heuristic
	word string
	want bool
}{
	{h: AllUpper{}, word: "HTTP", want: true},
	{h: AllUpper{}, word: "URLs", want: true},
	{h: AllUpper{}, word: "X509", want: true},
	{h: AllUpper{}, word: "Http", want: false},
	{h: AllUpper{}, word: "s", want: false},

	{h: Numeric{}, word: "2022", want: true},
	{h: Numeric{}, word: "20x", want: false},
	{h: Numeric{}, word: "²³", want: true},
	{h: Numeric{}, word: "", want: false},

	{h: MaxLen{N: 5}, word: "abcdef", want: true},
	{h: MaxLen{N: 5}, word: "abcde", want: false},
	{h: MaxLen{N: 5}, word: "ééééé", want: false},
	{h: MaxLen{}, word: "abcdef", want: false},

	{h: NakedHex{Min: 8}, word: "deadBEEF", want: true},
	{h: NakedHex{Min: 8}, word: "deadbee", want: false},
	{h: NakedHex{Min: 8}, word: "deadbeeg", want: false},
	{h: NakedHex{}, word: "deadbeef", want: false},
}

func TestHeuristics(t *testing.T) {
	for _, test := range heuristicTests {
		if got := test.h.Accept(test.word); got != test.want {
			t.Errorf("unexpected result for %T%+v with %q: got:%t want:%t", test.h, test.h, test.word, got, test.want)
		}
	}
}
