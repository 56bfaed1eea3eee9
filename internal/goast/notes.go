// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goast

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"regexp"
	"strings"
	"unicode"

	"github.com/kortschak/spellck/internal/words"
)

// DirectivePrefix is the prefix of comment directives understood by
// ExtraWords.
const DirectivePrefix = "//spellck:"

// DirectiveError is a malformed spellck directive.
type DirectiveError struct {
	Pos      token.Pos
	Position token.Position
	Text     string
	Err      error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%v: invalid directive %q: %v", e.Position, e.Text, e.Err)
}

func (e *DirectiveError) Unwrap() error { return e.Err }

var (
	errUnknownDirective = errors.New("unknown directive")
	errNoWords          = errors.New("no words")
)

// ExtraWords returns the words that the file declares as known. These are
// the words listed in
//
//	//spellck:words word...
//
// comment directives and the author uids of notes in the file. Invalid
// directives are reported in the returned error, which joins a
// *DirectiveError for each.
func (t *Tree) ExtraWords() ([]string, error) {
	var (
		extra []string
		errs  []error
	)
	for _, g := range t.file.Comments {
		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}
			verb, args := text, ""
			if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
				verb, args = text[:i], text[i:]
			}
			switch verb {
			case "words":
				list := strings.Fields(args)
				if len(list) == 0 {
					errs = append(errs, t.directiveError(c, errNoWords))
					continue
				}
				extra = append(extra, list...)
			default:
				errs = append(errs, t.directiveError(c, errUnknownDirective))
			}
		}
	}
	extra = append(extra, noteAuthors(t.file.Comments)...)
	return extra, errors.Join(errs...)
}

func (t *Tree) directiveError(c *ast.Comment, err error) error {
	return &DirectiveError{Pos: c.Pos(), Position: t.fset.Position(c.Pos()), Text: c.Text, Err: err}
}

// noteAuthors is derived from the go/doc readNotes function.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

var (
	noteMarker    = `([A-Z][A-Z]+)\(([^)]+)\):?`                    // MARKER(uid), MARKER at least 2 chars, uid at least 1 char
	noteMarkerRx  = regexp.MustCompile(`^[ \t]*` + noteMarker)      // MARKER(uid) at text start
	noteCommentRx = regexp.MustCompile(`^/[/*][ \t]*` + noteMarker) // MARKER(uid) at comment start
)

// noteAuthors returns the words of note author uids in comments.
// A note must start at the beginning of a comment with "MARKER(uid):"
// and is followed by the note body (e.g., "// BUG(kortschak): fix this").
// The note ends at the end of the comment group or at the start of
// another note in the same comment group, whichever comes first.
func noteAuthors(comments []*ast.CommentGroup) []string {
	var uids []string
	for _, g := range comments {
		i := -1 // comment index of most recent note start, valid if >= 0
		for j, c := range g.List {
			if noteCommentRx.MatchString(c.Text) {
				if i >= 0 {
					uids = append(uids, readNote(g.List[i:j])...)
				}
				i = j
			}
		}
		if i >= 0 {
			uids = append(uids, readNote(g.List[i:])...)
		}
	}
	return uids
}

// readNote returns the words of the uid of a single note.
func readNote(list []*ast.Comment) []string {
	text := (&ast.CommentGroup{List: list}).Text()
	m := noteMarkerRx.FindStringSubmatchIndex(text)
	if m == nil || strings.TrimSpace(text[m[1]:]) == "" {
		return nil
	}
	return words.Split(text[m[4]:m[5]])
}
