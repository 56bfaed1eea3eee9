// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Heuristic is a rule that accepts words without consulting a dictionary.
type Heuristic interface {
	Accept(word string) bool
}

// AllUpper accepts words where all runes are uppercase. For the purposes
// of this test, numerals are considered uppercase. As a special case, a
// final 's' is also considered uppercase to allow plurals of initialisms
// and acronyms.
type AllUpper struct{}

func (AllUpper) Accept(word string) bool {
	word = strings.TrimSuffix(word, "s")
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Numeric accepts words made only of numeric runes.
type Numeric struct{}

func (Numeric) Accept(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// MaxLen accepts words longer than N runes. These are more likely to be
// encoded data than text. A non-positive N accepts nothing.
type MaxLen struct{ N int }

func (h MaxLen) Accept(word string) bool {
	return h.N > 0 && utf8.RuneCountInString(word) > h.N
}

// NakedHex accepts words of at least Min hex digits. A non-positive Min
// accepts nothing.
type NakedHex struct{ Min int }

func (h NakedHex) Accept(word string) bool {
	return h.Min > 0 && len(word) >= h.Min && isHex(word)
}

// isHex returns whether all bytes of s are hex digits.
func isHex(s string) bool {
	for _, b := range s {
		b |= 'a' - 'A' // Lower case in the relevant range.
		if (b < '0' || '9' < b) && (b < 'a' || 'f' < b) {
			return false
		}
	}
	return true
}
