// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kortschak/spellck/internal/goast"
)

// Exit status codes.
const (
	success       = 0
	internalError = 1 << (iota - 1)
	invocationError
	directiveError
	spellingError
)

// config holds application-wide user configuration values.
type config struct {
	Dicts         []string      `toml:"dicts"`          // additional word lists.
	DefaultDict   bool          `toml:"default_dict"`   // use the system word list.
	KnownWords    bool          `toml:"known_words"`    // use the built-in Go and technical words.
	ReadLicenses  bool          `toml:"read_licenses"`  // ignore all words found in license files.
	GitLog        bool          `toml:"read_git_log"`   // ignore all author names and emails found in git log.
	ExportedOnly  bool          `toml:"exported_only"`  // only check the exported API.
	CheckComments bool          `toml:"check_comments"` // check comments that are not documentation.
	CheckStrings  bool          `toml:"check_strings"`  // check string literals.
	Apostrophes   bool          `toml:"apostrophes"`    // keep apostrophes within words.
	MaskURLs      bool          `toml:"mask_urls"`      // mask URLs before checking.
	IgnoreUpper   bool          `toml:"ignore_upper"`   // ignore words that are all uppercase.
	IgnoreNumbers bool          `toml:"ignore_numbers"` // ignore Go syntax number literals.
	MaxWordLen    int           `toml:"max_word_len"`   // ignore words longer than this.
	MinNakedHex   int           `toml:"min_naked_hex"`  // ignore words at least this long if only hex digits.
	Show          bool          `toml:"show"`           // mark the span of a misspelling.
	Color         string        `toml:"color"`          // colorize output: auto, on or off.
	Jobs          int           `toml:"jobs"`           // number of files checked concurrently.
	DiffContext   int           `toml:"diff_context"`   // specify number of lines of change context to include.
	EntropyFilter entropyFilter `toml:"entropy_filter"` // specify entropy filter behaviour for strings (experimental).

	since     string
	noDefault bool
	verbose   bool
}

var defaults = config{
	// Dictionary options.
	DefaultDict:  true,
	KnownWords:   true,
	ReadLicenses: true,
	GitLog:       true,

	// Traversal options.
	ExportedOnly:  false,
	CheckComments: false,
	CheckStrings:  false,

	// Checker options.
	Apostrophes:   false,
	MaskURLs:      true,
	IgnoreUpper:   true,
	IgnoreNumbers: true,
	MaxWordLen:    40,
	MinNakedHex:   8,

	// Output options.
	Show:        false,
	Color:       "auto",
	Jobs:        0,
	DiffContext: 0,

	// Experimental options.
	EntropyFilter: entropyFilter{
		Filter: false,
		EntropyFilter: goast.EntropyFilter{
			MinLen: 16,
			Accept: goast.IntRange{Low: 14, High: 20},
		},
	},
}

// entropyFilter specifies behaviour of the entropy filter.
type entropyFilter struct {
	Filter bool `toml:"filter"`
	goast.EntropyFilter
}

// filter returns the configured filter, or nil if filtering is disabled.
func (f entropyFilter) filter() *goast.EntropyFilter {
	if !f.Filter {
		return nil
	}
	return &f.EntropyFilter
}

// validate returns an error if the configuration is not valid.
func (c config) validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf(`invalid color mode %q: valid options are "auto", "on" and "off"`, c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid number of jobs: %d", c.Jobs)
	}
	if c.DiffContext < 0 {
		return fmt.Errorf("invalid diff context: %d", c.DiffContext)
	}
	return nil
}

const configFile = ".spellck.toml"

// loadConfig returns a config if one can be found in the working directory
// or one of its parents up to the root of the current module. It also
// returns a status and error for user information.
func loadConfig(args []string) (_ config, status int, err error) {
	// The config file provides the flag defaults, so it must be
	// found before the command line is parsed.
	useConfig := true // Default to true.
	for _, arg := range args {
		if arg == "--" {
			break
		}
		name, val, hasVal := strings.Cut(arg, "=")
		if name != "-config" && name != "--config" {
			continue
		}
		if !hasVal {
			useConfig = true
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			// Let command-line flag parser handle this.
			return defaults, success, nil
		}
		useConfig = b
	}
	cfg := defaults
	if !useConfig {
		return cfg, success, nil
	}

	path, err := findConfig()
	if err != nil {
		return cfg, internalError, err
	}
	if path == "" {
		return cfg, success, nil
	}
	_, err = toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, invocationError, fmt.Errorf("invalid config file: %w", err)
	}
	err = cfg.validate()
	if err != nil {
		return config{}, invocationError, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, success, nil
}

// findConfig returns the path of the nearest config file. The search stops
// at the first directory holding a go.mod file. If no config file is found
// the returned path is empty.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, configFile)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		_, err = os.Stat(filepath.Join(dir, "go.mod"))
		if err == nil {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
