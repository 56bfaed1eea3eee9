// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lint_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/kortschak/spellck/internal/lint"
)

// setFlags sets analyzer flags for the duration of the test.
func setFlags(t *testing.T, flags map[string]string) {
	t.Helper()
	for name, val := range flags {
		f := lint.Analyzer.Flags.Lookup(name)
		if f == nil {
			t.Fatalf("no flag %q", name)
		}
		orig := f.Value.String()
		if err := lint.Analyzer.Flags.Set(name, val); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			_ = lint.Analyzer.Flags.Set(name, orig)
		})
	}
}

func TestBasic(t *testing.T) {
	testdata := analysistest.TestData()
	setFlags(t, map[string]string{
		"dict":            filepath.Join(testdata, "words.txt"),
		"no-default-dict": "true",
	})
	analysistest.Run(t, testdata, lint.Analyzer, "basic")
}

func TestExportedOnly(t *testing.T) {
	testdata := analysistest.TestData()
	setFlags(t, map[string]string{
		"dict":            filepath.Join(testdata, "words.txt"),
		"no-default-dict": "true",
		"exported":        "true",
	})
	analysistest.Run(t, testdata, lint.Analyzer, "exported")
}
