// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spellck-vet is a linter that checks the spelling of Go
// identifiers and documentation. It can be run directly or with
// go vet -vettool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/kortschak/spellck/internal/lint"
)

func main() {
	singlechecker.Main(lint.Analyzer)
}
