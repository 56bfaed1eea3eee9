// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Source is a named word list.
type Source interface {
	// Name identifies the source in errors.
	Name() string
	// Words returns the words held by the source.
	Words() ([]string, error)
}

// LoadError is returned by Load when a source cannot be read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load returns the union of words from all the provided sources. If any
// source fails, no dictionary is returned and the error is a *LoadError.
func Load(sources ...Source) (*Dictionary, error) {
	d := New()
	for _, src := range sources {
		words, err := src.Words()
		if err != nil {
			return nil, &LoadError{Source: src.Name(), Err: err}
		}
		d.add(words...)
	}
	return d, nil
}

// File returns a Source reading the word list at path. The format of the
// file is determined by FormatOf.
func File(path string) Source {
	return file(path)
}

type file string

func (f file) Name() string { return string(f) }

func (f file) Words() ([]string, error) {
	fh, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return FormatOf(string(f)).Decode(fh)
}

// Reader returns a Source that decodes words in the given format from r.
// The reader is consumed by the first call to Words.
func Reader(name string, r io.Reader, format Format) Source {
	return reader{name: name, r: r, format: format}
}

type reader struct {
	name   string
	r      io.Reader
	format Format
}

func (r reader) Name() string            { return r.name }
func (r reader) Words() ([]string, error) { return r.format.Decode(r.r) }

// List returns a Source holding the provided words.
func List(name string, words ...string) Source {
	return list{name: name, words: words}
}

type list struct {
	name  string
	words []string
}

func (l list) Name() string            { return l.name }
func (l list) Words() ([]string, error) { return l.words, nil }

// Format is a word list encoding.
type Format int

const (
	// Plain is one word per line. Surrounding white space
	// is removed and blank lines are ignored.
	Plain Format = iota
	// Hunspell is the hunspell .dic format. The leading
	// word count line is required. Affix flags and
	// morphological fields are discarded.
	Hunspell
	// Msgpack is a msgpack encoded array of strings.
	Msgpack
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Hunspell:
		return "hunspell"
	case Msgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for f := Plain; f <= Msgpack; f++ {
		if name == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf(`unknown dictionary format %q: valid formats are "plain", "hunspell" and "msgpack"`, name)
}

// FormatOf returns the format implied by the extension of path: .dic files
// are Hunspell, .mp and .msgpack files are Msgpack, and all others are
// Plain.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dic":
		return Hunspell
	case ".mp", ".msgpack":
		return Msgpack
	default:
		return Plain
	}
}

// Decode reads words in the receiver's format from r.
func (f Format) Decode(r io.Reader) ([]string, error) {
	switch f {
	case Plain:
		return decodePlain(r)
	case Hunspell:
		return decodeHunspell(r)
	case Msgpack:
		var words []string
		err := msgpack.NewDecoder(r).Decode(&words)
		if err != nil {
			return nil, fmt.Errorf("invalid msgpack word list: %w", err)
		}
		return words, nil
	default:
		return nil, fmt.Errorf("unknown dictionary format: %v", f)
	}
}

func decodePlain(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, sc.Err()
}

func decodeHunspell(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for i := 0; sc.Scan(); i++ {
		line := sc.Text()
		if i == 0 {
			_, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("invalid word count %q at line 1", line)
			}
			continue
		}
		if strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "#") {
			// Comment lines.
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		word, _, _ := strings.Cut(fields[0], "/")
		if word == "" {
			return nil, fmt.Errorf("invalid dictionary entry %q at line %d", line, i+1)
		}
		words = append(words, word)
	}
	return words, sc.Err()
}

// Encode writes the words of d to w in the given format.
func Encode(w io.Writer, d *Dictionary, format Format) error {
	words := d.Words()
	switch format {
	case Plain, Hunspell:
		bw := bufio.NewWriter(w)
		if format == Hunspell {
			fmt.Fprintln(bw, len(words))
		}
		for _, word := range words {
			fmt.Fprintln(bw, word)
		}
		err := bw.Flush()
		if err != nil {
			return fmt.Errorf("failed to write dictionary: %w", err)
		}
		return nil
	case Msgpack:
		err := msgpack.NewEncoder(w).Encode(words)
		if err != nil {
			return fmt.Errorf("failed to write dictionary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown dictionary format: %v", format)
	}
}
