// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContainsFoldsCase(t *testing.T) {
	d := New("Apple")
	for _, w := range []string{"Apple", "apple", "APPLE", "aPpLe"} {
		if !d.Contains(w) {
			t.Errorf("expected %q to be found", w)
		}
	}
	if d.Contains("apples") {
		t.Error("unexpected match for plural form")
	}
}

func TestContainsNormalizesComposition(t *testing.T) {
	d := New("caf\u00e9")
	if !d.Contains("cafe\u0301") {
		t.Error("expected decomposed form to match composed entry")
	}
}

func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	if d.Contains("word") {
		t.Error("nil dictionary contains a word")
	}
	if d.Len() != 0 {
		t.Errorf("unexpected length of nil dictionary: %d", d.Len())
	}
	ext := d.Extend("word")
	if !ext.Contains("word") {
		t.Error("extension of nil dictionary is missing added word")
	}
}

func TestExtendDoesNotAlterBase(t *testing.T) {
	base := New("foo", "bar")
	ext := base.Extend("baz", "Qux")

	if base.Contains("baz") || base.Contains("qux") {
		t.Error("base dictionary altered by Extend")
	}
	for _, w := range []string{"foo", "bar", "baz", "qux"} {
		if !ext.Contains(w) {
			t.Errorf("extended dictionary missing %q", w)
		}
	}
	if base.Len() != 2 || ext.Len() != 4 {
		t.Errorf("unexpected lengths: base=%d ext=%d", base.Len(), ext.Len())
	}
}

func TestLoadUnion(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "words")
	err := os.WriteFile(plain, []byte("alpha\n  Beta  \n\ngamma\nalpha\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	hun := filepath.Join(dir, "extra.dic")
	err = os.WriteFile(hun, []byte("3\ndelta/SM\nepsilon\tpo:noun\n\tcomment line\nzeta/\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	d, err := Load(
		File(plain),
		File(hun),
		List("inline", "Eta", "gamma"),
		Reader("reader", strings.NewReader("theta\n"), Plain),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta", "delta", "epsilon", "eta", "gamma", "theta", "zeta"}
	if got := d.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected words:\n%s", cmp.Diff(want, got))
	}
}

func TestLoadError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	d, err := Load(List("ok", "word"), File(missing))
	if d != nil {
		t.Error("expected no dictionary on failure")
	}
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if lerr.Source != missing {
		t.Errorf("unexpected source: got:%q want:%q", lerr.Source, missing)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped not exist error, got: %v", err)
	}
}

func TestLoadMalformedHunspell(t *testing.T) {
	_, err := Load(Reader("bad.dic", strings.NewReader("alpha\nbeta\n"), Hunspell))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T: %v", err, err)
	}
	if lerr.Source != "bad.dic" {
		t.Errorf("unexpected source: %q", lerr.Source)
	}
}

func TestMsgpackEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, New("one", "Two"), Msgpack)
	if err != nil {
		t.Fatalf("unexpected error encoding: %v", err)
	}
	d, err := Load(Reader("packed", &buf, Msgpack))
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	want := []string{"one", "two"}
	if got := d.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected words:\n%s", cmp.Diff(want, got))
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"words":          Plain,
		"en_US.dic":      Hunspell,
		"words.mp":       Msgpack,
		"words.MSGPACK":  Msgpack,
		"/usr/words.txt": Plain,
	} {
		if got := FormatOf(path); got != want {
			t.Errorf("unexpected format for %q: got:%v want:%v", path, got, want)
		}
	}
	for _, f := range []Format{Plain, Hunspell, Msgpack} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("failed to parse %q: got:%v err:%v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
