// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The spellck command finds misspelled words in Go identifiers and
// documentation.
//
// Each identifier is split into words at underscores, case changes and
// digit boundaries, and each word is checked against a dictionary built
// from the system word list, a built-in list of Go and technical words,
// user word lists, license files and git authors. Words that are not
// known are reported with the location of the name or comment they were
// found in.
//
// Words can be added for a single file with a directive comment:
//
//	//spellck:words word...
//
// The exit status is a bit set: 1 for internal errors, 2 for invocation
// errors, 4 for invalid directives and 8 if misspelled words were found.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kortschak/spellck/internal/dictionary"
)

func main() {
	os.Exit(spellck())
}

// exitStatus is an error reporting a non-zero exit status. The reasons for
// the status have already been reported.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func spellck() int {
	cfg, status, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spellck: %v\n", err)
		return status
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newRootCmd(&cfg)
	cmd.SetArgs(os.Args[1:])
	err = cmd.ExecuteContext(ctx)
	var exit exitStatus
	switch {
	case err == nil:
		return success
	case errors.As(err, &exit):
		return int(exit)
	default:
		fmt.Fprintf(os.Stderr, "spellck: %v\n", err)
		return invocationError
	}
}

func newRootCmd(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:   "spellck [flags] [path ...]",
		Short: "Check the spelling of Go identifiers and documentation",
		Long: `The spellck program reports misspelled words in Go identifiers and
documentation.

Paths may be Go files or directories. A directory path ending in /...
includes all its subdirectories except testdata, vendor and those starting
with a dot or underscore. The default path is the current directory.

Flag defaults are taken from a ` + configFile + ` file in the current
directory or its parents up to the module root, unless --config=false.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cfg.finish()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()
			status := check(cmd.Context(), *cfg, args, useColor(cfg.Color, stdout), stdout, stderr, logger(cfg.verbose, stderr))
			if status != success {
				return exitStatus(status)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.Bool("config", true, "use the "+configFile+" config file")
	pf.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug information to stderr")
	pf.StringSliceVarP(&cfg.Dicts, "dict", "d", cfg.Dicts, "additional word list: hunspell .dic, msgpack .mp or one word per line")
	pf.BoolVarP(&cfg.noDefault, "no-default-dict", "n", !cfg.DefaultDict, "do not use the system word list "+dictionary.DefaultPath)
	pf.BoolVar(&cfg.KnownWords, "known", cfg.KnownWords, "use built-in Go and technical words")
	pf.BoolVar(&cfg.ReadLicenses, "licenses", cfg.ReadLicenses, "use words from license files")
	pf.BoolVar(&cfg.GitLog, "git-log", cfg.GitLog, "use author names and emails from git log")

	f := root.Flags()
	f.BoolVar(&cfg.ExportedOnly, "exported", cfg.ExportedOnly, "only check the exported API")
	f.BoolVar(&cfg.CheckComments, "comments", cfg.CheckComments, "check comments that are not documentation")
	f.BoolVar(&cfg.CheckStrings, "strings", cfg.CheckStrings, "check string literals")
	f.BoolVar(&cfg.EntropyFilter.Filter, "entropy-filter", cfg.EntropyFilter.Filter, "filter strings by character entropy (experimental)")
	f.BoolVar(&cfg.Apostrophes, "apostrophes", cfg.Apostrophes, "keep apostrophes within words")
	f.BoolVar(&cfg.MaskURLs, "mask-urls", cfg.MaskURLs, "mask URLs in text")
	f.BoolVar(&cfg.IgnoreUpper, "ignore-upper", cfg.IgnoreUpper, "ignore all-uppercase words")
	f.BoolVar(&cfg.IgnoreNumbers, "ignore-numbers", cfg.IgnoreNumbers, "ignore Go syntax number literals")
	f.IntVar(&cfg.MaxWordLen, "max-word-len", cfg.MaxWordLen, "ignore words longer than this")
	f.IntVar(&cfg.MinNakedHex, "min-naked-hex", cfg.MinNakedHex, "ignore words at least this long if only hex digits")
	f.BoolVar(&cfg.Show, "show", cfg.Show, "mark the span of each misspelling")
	f.StringVar(&cfg.Color, "color", cfg.Color, "colorize output (auto|on|off)")
	f.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "number of files checked concurrently (0 is GOMAXPROCS)")
	f.StringVar(&cfg.since, "since", "", "only report misspellings on lines added since this git ref")
	f.IntVar(&cfg.DiffContext, "diff-context", cfg.DiffContext, "lines of context around changes when using --since")

	root.AddCommand(newDictCmd(cfg), newVersionCmd())
	return root
}

// finish completes the configuration from the parsed flags.
func (c *config) finish() error {
	c.DefaultDict = !c.noDefault
	return c.validate()
}

func newDictCmd(cfg *config) *cobra.Command {
	var (
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Write the merged dictionary",
		Long: `The dict command writes the words of the dictionary that would be used
to check files with the same flags and configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := cfg.finish()
			if err != nil {
				return err
			}
			enc, err := dictionary.ParseFormat(format)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			d, err := dictionary.Load(cfg.sources(cmd.Context(), logger(cfg.verbose, stderr))...)
			if err != nil {
				fmt.Fprintf(stderr, "spellck: %v\n", err)
				return exitStatus(invocationError)
			}

			if output == "" {
				err = dictionary.Encode(cmd.OutOrStdout(), d, enc)
			} else {
				err = writeDict(output, d, enc)
			}
			if err != nil {
				fmt.Fprintf(stderr, "spellck: %v\n", err)
				return exitStatus(internalError)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", dictionary.Plain.String(), "output format (plain|hunspell|msgpack)")
	return cmd
}

// writeDict writes d to the file at path in the given format.
func writeDict(path string, d *dictionary.Dictionary, format dictionary.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = dictionary.Encode(f, d, format)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// useColor returns whether output to w should be colorized in the given
// mode.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logger returns a logger writing debug records to w if verbose is true,
// and discarding all records otherwise.
func logger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
