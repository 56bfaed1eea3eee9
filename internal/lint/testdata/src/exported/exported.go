// Package exported is checked for exported names only.
package exported

// Exported is fine.
func Exported() {}

func unexportedBzr() {}

// ExportedBzr is not fine. // want "misspelled word: Bzr"
func ExportedBzr() {} // want "misspelled word: Bzr"

type hidden struct {
	Quxx int
}
