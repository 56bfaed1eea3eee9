// Package basic is checked by the spelling analyzer.
package basic

// Good is a known name.
func Good() {}

func fooBzr() {} // want "misspelled word: Bzr"

// Thing does a tyop. // want "misspelled word: tyop"
type Thing struct {
	Quxx int // want "misspelled word: Quxx"
}

func (Thing) frobZap() {} // want `misspelled words: Zap, frob`

//spellck:words zorp

var zorpValue = "an unchecked strng"

//spellck:nope // want "invalid spellck directive: unknown directive"
