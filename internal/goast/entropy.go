// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goast

import (
	"math"
	"unicode"
)

// EntropyFilter rejects string literals whose character entropy falls
// outside the range expected for text.
type EntropyFilter struct {
	// MinLen is the shortest text length that will
	// be considered by the filter.
	MinLen int `toml:"min_len_filtered"`

	// Accept is the range of effective alphabet sizes
	// that are acceptable as text that may contain words
	// needing spell checking.
	Accept IntRange `toml:"accept"`
}

// IntRange is an int interval.
type IntRange struct {
	Low  int `toml:"low"`
	High int `toml:"high"`
}

// Reject returns whether text falls outside the expected ranges for
// text. If print is true, non-printable characters are not counted. A nil
// filter rejects nothing.
func (f *EntropyFilter) Reject(text string, print bool) bool {
	if f == nil || len(text) < f.MinLen {
		return false
	}
	e := entropy(text, print)
	low := expectedEntropy(len(text), f.Accept.Low)
	high := expectedEntropy(len(text), f.Accept.High)
	return e < low || high < e
}

// entropy returns the entropy of the provided text in bits.
func entropy(text string, print bool) float64 {
	if text == "" {
		return 0
	}

	var counts [256]float64
	for _, b := range []byte(text) {
		if print && !unicode.IsPrint(rune(b)) {
			continue
		}
		counts[b]++
	}
	n := len(text)

	// e = -∑i=1..k((p_i)*log(p_i))
	var e float64
	for _, cnt := range counts {
		if cnt == 0 {
			continue
		}
		p := cnt / float64(n)
		e += p * math.Log2(p)
	}
	if e == 0 {
		// Don't negate zero.
		return 0
	}
	return -e
}

// expectedEntropy returns the expected entropy for a sequence of n letters
// uniformly chosen from an alphabet of s letters.
func expectedEntropy(n, s int) float64 {
	n = min(n, s)
	if n < 2 {
		return 0
	}
	return math.Log2(float64(n))
}
