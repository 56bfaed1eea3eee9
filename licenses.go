// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/licensecheck"

	"github.com/kortschak/spellck/internal/words"
)

// licenseWords is a dictionary source holding the words of license files
// under root that satisfy the licensecheck threshold.
type licenseWords struct {
	root   string
	thresh float64
}

func (l licenseWords) Name() string { return "license files in " + l.root }

func (l licenseWords) Words() ([]string, error) {
	texts, err := licenses(l.root, l.thresh)
	if err != nil {
		return nil, err
	}
	var list []string
	for _, text := range texts {
		for _, w := range words.Split(text) {
			list = append(list, quietly(w))
		}
	}
	return list, nil
}

// quietly returns the provided string lower cased if it is all upper case.
func quietly(s string) string {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return s
		}
	}
	return strings.ToLower(s)
}

// licenses returns the text of all files matching licenses using
// licensecheck.Scan with at least a thresh match.
func licenses(root string, thresh float64) ([]string, error) {
	maybeLicense := make(map[string]bool)
	for _, c := range candidates {
		maybeLicense[strings.ToLower(c)] = true
	}

	var texts []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if !maybeLicense[strings.ToLower(name)] {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if licensecheck.Scan(b).Percent >= thresh {
			texts = append(texts, string(b))
		}
		return nil
	})
	return texts, err
}

var candidates = []string{
	"COPYING",
	"LICENCE",
	"LICENSE",
	"LICENSE-2.0",
	"LICENCE-2.0",
	"LICENSE-APACHE",
	"LICENCE-APACHE",
	"LICENSE-APACHE-2.0",
	"LICENCE-APACHE-2.0",
	"LICENSE-MIT",
	"LICENCE-MIT",
	"MIT-LICENSE",
	"MIT-LICENCE",
	"MIT_LICENSE",
	"MIT_LICENCE",
	"UNLICENSE",
	"UNLICENCE",
}
