// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import "log/slog"

// Misspellings maps spans of one source file to the unknown words found
// in them.
type Misspellings map[Span]Set

// Add merges words into the entry for span. Empty sets are ignored.
func (m Misspellings) Add(span Span, words Set) {
	if len(words) == 0 {
		return
	}
	cur, ok := m[span]
	if !ok {
		cur = make(Set, len(words))
		m[span] = cur
	}
	cur.Union(words)
}

// CollectOptions configures Collect.
type CollectOptions struct {
	// ExportedOnly restricts checking to nodes that
	// are part of the exported API.
	ExportedOnly bool

	// Logger receives debug records for skipped nodes.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// Collect walks tree, checking each node that carries a name or text with
// c, and returns the unknown words found keyed by span. Nodes of kinds it
// does not recognize are skipped.
func Collect(tree Tree, c *Checker, opts CollectOptions) Misspellings {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := make(Misspellings)
	tree.Walk(func(n Node) {
		switch n.Kind {
		case KindPackage, KindImport, KindType, KindTypeParam, KindFunc, KindMethod,
			KindParam, KindVar, KindConst, KindField, KindLabel:
		case KindDoc, KindComment, KindString:
		default:
			log.Debug("skipping node", "kind", n.Kind, "span", n.Span)
			return
		}
		if opts.ExportedOnly && !n.Exported {
			return
		}
		m.Add(n.Span, c.Check(n.Text))
	})
	return m
}
