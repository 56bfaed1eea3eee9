// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kortschak/spellck/internal/dictionary"
	"github.com/kortschak/spellck/internal/goast"
	"github.com/kortschak/spellck/internal/report"
	"github.com/kortschak/spellck/internal/spelling"
)

// licenseThreshold is the minimum licensecheck match percentage for a
// file's words to be added to the dictionary.
const licenseThreshold = 80

// sources returns the dictionary sources specified by the configuration.
func (c config) sources(ctx context.Context, log *slog.Logger) []dictionary.Source {
	var sources []dictionary.Source
	if c.DefaultDict {
		sources = append(sources, dictionary.File(dictionary.DefaultPath))
	}
	if c.KnownWords {
		sources = append(sources, dictionary.Known())
	}
	for _, path := range c.Dicts {
		sources = append(sources, dictionary.File(path))
	}
	if c.ReadLicenses {
		sources = append(sources, licenseWords{root: ".", thresh: licenseThreshold})
	}
	if c.GitLog {
		sources = append(sources, gitLogWords{ctx: ctx, log: log})
	}
	return sources
}

// checker returns a spelling checker for d using the configured options.
func (c config) checker(d *dictionary.Dictionary) *spelling.Checker {
	heuristics := []spelling.Heuristic{
		spelling.MaxLen{N: c.MaxWordLen},
		spelling.NakedHex{Min: c.MinNakedHex},
	}
	if c.IgnoreUpper {
		heuristics = append(heuristics, spelling.AllUpper{})
	}
	if c.IgnoreNumbers {
		heuristics = append(heuristics, spelling.Numeric{})
	}
	return spelling.NewChecker(d, spelling.Options{
		Apostrophes: c.Apostrophes,
		MaskURLs:    c.MaskURLs,
		Heuristics:  heuristics,
	})
}

// check checks the Go files specified by paths, writing reports to stdout
// and errors to stderr. It returns the exit status of the check.
func check(ctx context.Context, cfg config, paths []string, color bool, stdout, stderr io.Writer, log *slog.Logger) int {
	files, err := listFiles(paths)
	if err != nil {
		fmt.Fprintf(stderr, "spellck: %v\n", err)
		return invocationError
	}

	dict, err := dictionary.Load(cfg.sources(ctx, log)...)
	if err != nil {
		fmt.Fprintf(stderr, "spellck: %v\n", err)
		var lerr *dictionary.LoadError
		if errors.As(err, &lerr) {
			return invocationError
		}
		return internalError
	}
	log.Debug("loaded dictionary", "words", dict.Len())

	var changes changeFilter
	if cfg.since != "" {
		changes, err = gitAdditionsSince(ctx, cfg.since, cfg.DiffContext)
		if err != nil {
			fmt.Fprintf(stderr, "spellck: %v\n", err)
			return invocationError
		}
	}

	f := &fileChecker{
		checker: cfg.checker(dict),
		opts: goast.Options{
			Comments: cfg.CheckComments,
			Strings:  cfg.CheckStrings,
			Entropy:  cfg.EntropyFilter.filter(),
		},
		exportedOnly: cfg.ExportedOnly,
		changes:      changes,
		show:         cfg.Show,
		color:        color,
		log:          log,
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Each goroutine owns its index, so no locking is needed.
	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if r := recover(); r != nil {
					results[i] = fileResult{err: fmt.Errorf("%s: failed to check file: %v", path, r)}
				}
			}()
			results[i] = f.check(path)
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		fmt.Fprintf(stderr, "spellck: %v\n", err)
		return internalError
	}

	status := success
	var summary report.Summary
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(stderr, "spellck: %v\n", r.err)
			status |= invocationError
			continue
		}
		for _, err := range r.directives {
			fmt.Fprintf(stderr, "spellck: %v\n", err)
			status |= directiveError
		}
		summary.Add(r.diags)
		_, err = stdout.Write(r.out)
		if err != nil {
			fmt.Fprintf(stderr, "spellck: %v\n", err)
			return status | internalError
		}
	}
	log.Debug("checked files", "files", summary.Files, "spans", summary.Spans)
	if summary.Mistakes() {
		status |= spellingError
	}
	return status
}

// fileChecker checks single files.
type fileChecker struct {
	checker      *spelling.Checker
	opts         goast.Options
	exportedOnly bool
	changes      changeFilter

	show  bool
	color bool

	log *slog.Logger
}

// fileResult is the result of checking a single file.
type fileResult struct {
	out        []byte
	diags      []report.Diagnostic
	directives []error
	err        error
}

// check parses the file at path, checks it and renders its reports.
func (f *fileChecker) check(path string) fileResult {
	start := time.Now()
	var res fileResult
	src, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}
	tree, err := goast.Parse(token.NewFileSet(), rel(path), src, f.opts)
	if err != nil {
		res.err = err
		return res
	}
	extra, err := tree.ExtraWords()
	if err != nil {
		res.directives = unjoin(err)
	}
	c := f.checker.WithDictionary(f.checker.Dictionary().Extend(extra...))
	m := spelling.Collect(tree, c, spelling.CollectOptions{
		ExportedOnly: f.exportedOnly,
		Logger:       f.log.With("file", path),
	})
	entries := report.Order(m)
	if f.changes != nil {
		entries = slices.DeleteFunc(entries, func(e report.Entry) bool {
			return !f.changes.includes(path, tree.Line(e.Span))
		})
	}
	res.diags = report.Diagnose(entries, tree)
	var buf bytes.Buffer
	p := report.NewPrinter(&buf, f.show, f.color)
	for _, d := range res.diags {
		// Writes to a bytes.Buffer do not fail.
		_ = p.Print(d)
	}
	res.out = buf.Bytes()
	f.log.Debug("checked file", "file", path, "spans", len(res.diags), "duration", time.Since(start))
	return res
}

// unjoin returns the errors joined in err.
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// listFiles returns the sorted list of Go files specified by paths. A path
// ending in "/..." includes Go files in all subdirectories of its root.
func listFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	var files []string
	for _, path := range paths {
		root, recursive := strings.CutSuffix(filepath.ToSlash(path), "/...")
		if root == "..." {
			root, recursive = ".", true
		} else if recursive && root == "" {
			root = "/"
		}
		root = filepath.FromSlash(root)
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			if recursive {
				return nil, fmt.Errorf("%s is not a directory", root)
			}
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				if !recursive || skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if isGoFile(d) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// skipDir returns whether the named directory is ignored by the go tool.
func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isGoFile(d fs.DirEntry) bool {
	name := d.Name()
	return d.Type().IsRegular() && strings.HasSuffix(name, ".go") && !strings.HasPrefix(name, ".") && !strings.HasPrefix(name, "_")
}

// rel returns the wd-relative path for the input if possible.
func rel(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
