// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lint provides a go/analysis based analyzer for detecting
// misspelled words in Go identifiers and documentation.
package lint

import (
	"errors"
	"flag"
	"go/ast"
	"path/filepath"
	"sync"

	"golang.org/x/tools/go/analysis"

	"github.com/kortschak/spellck/internal/dictionary"
	"github.com/kortschak/spellck/internal/goast"
	"github.com/kortschak/spellck/internal/report"
	"github.com/kortschak/spellck/internal/spelling"
)

// Flags for the analyzer.
var (
	dictPaths     string
	noDefaultDict bool
	knownWords    bool
	exportedOnly  bool
	checkComments bool
	checkStrings  bool
)

func init() {
	Analyzer.Flags.StringVar(&dictPaths, "dict", "",
		"list of additional word list files separated by the OS path list separator")
	Analyzer.Flags.BoolVar(&noDefaultDict, "no-default-dict", false,
		"do not use the system word list "+dictionary.DefaultPath)
	Analyzer.Flags.BoolVar(&knownWords, "known", true, "include built-in Go and technical words")
	Analyzer.Flags.BoolVar(&exportedOnly, "exported", false, "only check the exported API")
	Analyzer.Flags.BoolVar(&checkComments, "comments", false, "check comments that are not documentation")
	Analyzer.Flags.BoolVar(&checkStrings, "strings", false, "check string literal values")
}

// Analyzer reports misspelled words in identifiers and documentation.
var Analyzer = &analysis.Analyzer{
	Name:  "spellck",
	Doc:   "checks the spelling of identifiers and documentation",
	Run:   run,
	Flags: flag.FlagSet{},
}

// Category is the category of spelling diagnostics.
const Category = "spelling"

func run(pass *analysis.Pass) (any, error) {
	base, err := baseDictionary(dictKey{
		paths:     dictPaths,
		noDefault: noDefaultDict,
		known:     knownWords,
	})
	if err != nil {
		return nil, err
	}
	c := spelling.NewChecker(base, spelling.Options{
		MaskURLs: true,
		Heuristics: []spelling.Heuristic{
			spelling.AllUpper{},
			spelling.Numeric{},
			spelling.MaxLen{N: 40},
			spelling.NakedHex{Min: 8},
		},
	})
	opts := goast.Options{Comments: checkComments, Strings: checkStrings}

	for _, file := range pass.Files {
		// Always skip generated files.
		if ast.IsGenerated(file) {
			continue
		}
		tree := goast.New(pass.Fset, file, nil, opts)
		extra, err := tree.ExtraWords()
		for _, err := range directiveErrors(err) {
			pass.Report(analysis.Diagnostic{
				Pos:      err.Pos,
				Category: "directive",
				Message:  "invalid spellck directive: " + err.Err.Error(),
			})
		}
		m := spelling.Collect(tree, c.WithDictionary(base.Extend(extra...)), spelling.CollectOptions{
			ExportedOnly: exportedOnly,
		})
		for _, e := range report.Order(m) {
			pos, end := tree.Pos(e.Span)
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				End:      end,
				Category: Category,
				Message:  report.Message(e.Words),
			})
		}
	}

	return nil, nil
}

// directiveErrors returns the directive errors held by err.
func directiveErrors(err error) []*goast.DirectiveError {
	if err == nil {
		return nil
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	var derrs []*goast.DirectiveError
	for _, err := range errs {
		var derr *goast.DirectiveError
		if errors.As(err, &derr) {
			derrs = append(derrs, derr)
		}
	}
	return derrs
}

// dictKey identifies a base dictionary by the flags that define it.
type dictKey struct {
	paths     string
	noDefault bool
	known     bool
}

// dicts holds the base dictionaries loaded so far, shared between passes.
var dicts = struct {
	sync.Mutex
	cache map[dictKey]*dictionary.Dictionary
}{cache: make(map[dictKey]*dictionary.Dictionary)}

func baseDictionary(key dictKey) (*dictionary.Dictionary, error) {
	dicts.Lock()
	defer dicts.Unlock()
	if d, ok := dicts.cache[key]; ok {
		return d, nil
	}
	var sources []dictionary.Source
	if !key.noDefault {
		sources = append(sources, dictionary.File(dictionary.DefaultPath))
	}
	if key.known {
		sources = append(sources, dictionary.Known())
	}
	for _, path := range filepath.SplitList(key.paths) {
		sources = append(sources, dictionary.File(path))
	}
	d, err := dictionary.Load(sources...)
	if err != nil {
		return nil, err
	}
	dicts.cache[key] = d
	return d, nil
}
