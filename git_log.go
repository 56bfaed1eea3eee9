// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"

	"golang.org/x/sys/execabs"

	"github.com/kortschak/spellck/internal/words"
)

// gitLogWords is a dictionary source holding the words of author names
// and email addresses from git log. Outside a git repository it is empty.
type gitLogWords struct {
	ctx context.Context
	log *slog.Logger
}

func (gitLogWords) Name() string { return "git log" }

func (g gitLogWords) Words() ([]string, error) {
	cmd := execabs.CommandContext(g.ctx, "git", "log", "--format=%an %ae")
	var buf bytes.Buffer
	cmd.Stdout = &buf
	err := cmd.Run()
	if err != nil {
		g.log.Debug("no git log words", "error", err)
		return nil, nil
	}
	return words.Split(buf.String()), nil
}
