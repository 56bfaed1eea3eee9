// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/execabs"
)

// changeFilter is a filter to exclude reports on lines not in a set of
// code changes. It is keyed by slash-separated path relative to the
// working directory.
type changeFilter map[string][]lineRange

// includes returns whether line of the file at path is in changes in the
// filter. If f is nil all lines are included.
func (f changeFilter) includes(path string, line int) bool {
	if f == nil {
		return true
	}
	for _, r := range f[filepath.ToSlash(rel(path))] {
		if r.start <= line && line <= r.end {
			return true
		}
	}
	return false
}

// lineRange is a range of lines in a file, [start,end].
type lineRange struct{ start, end int }

// gitAdditionsSince returns a map of line additions in the current git
// repo since the specified ref, with paths relative to the working
// directory. The contextLines parameter specifies how many context lines
// are to be considered in an addition.
func gitAdditionsSince(ctx context.Context, ref string, contextLines int) (changeFilter, error) {
	gitDiff := execabs.CommandContext(ctx, "git", "diff", "--relative", fmt.Sprintf("-U%d", contextLines), ref)
	var buf, stderr bytes.Buffer
	gitDiff.Stdout = &buf
	gitDiff.Stderr = &stderr
	err := gitDiff.Run()
	if err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) != 0 {
			return nil, fmt.Errorf("git diff %s: %w: %s", ref, err, msg)
		}
		return nil, fmt.Errorf("git diff %s: %w", ref, err)
	}
	return additions(&buf)
}

// additions returns a map of line additions calculated from unified diff
// data in r.
func additions(r io.Reader) (changeFilter, error) {
	const (
		fileAdditionPrefix = "+++ b/"
		hunkPrefix         = "@@ "
		deletionSuffix     = ",0"
	)

	additions := make(changeFilter)
	sc := bufio.NewScanner(r)
	var path string
	for sc.Scan() {
		switch {
		default:
			continue
		case bytes.HasPrefix(sc.Bytes(), []byte(fileAdditionPrefix)):
			path = strings.TrimPrefix(sc.Text(), fileAdditionPrefix)
		case bytes.HasPrefix(sc.Bytes(), []byte(hunkPrefix)):
			f := bytes.SplitN(sc.Bytes(), []byte{' '}, 4)
			if len(f) < 3 || !bytes.HasPrefix(f[2], []byte{'+'}) {
				return nil, fmt.Errorf("malformed diff line: %s", sc.Bytes())
			}
			if bytes.HasSuffix(f[2], []byte(deletionSuffix)) {
				continue
			}
			hunk := string(f[2][1:])
			lines := 0
			var err error
			if idx := strings.Index(hunk, ","); idx >= 0 {
				lines, err = strconv.Atoi(hunk[idx+1:])
				if err != nil {
					return nil, fmt.Errorf("could not parse line range end: %w", err)
				}
				lines--
				hunk = hunk[:idx]
			}
			line, err := strconv.Atoi(hunk)
			if err != nil {
				return nil, fmt.Errorf("could not parse line range start: %w", err)
			}
			additions[path] = append(additions[path], lineRange{line, line + lines})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return additions, nil
}
