// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spelling

import "fmt"

// Kind is the syntactic role of a node that carries text.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Programmer chosen names.
	KindPackage
	KindImport // Import alias.
	KindType
	KindTypeParam
	KindFunc
	KindMethod
	KindParam // Receivers, parameters and results.
	KindVar
	KindConst
	KindField
	KindLabel

	// Text.
	KindDoc     // Documentation attached to a declaration.
	KindComment // Any other comment.
	KindString  // String literal value.
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindPackage:   "package",
	KindImport:    "import",
	KindType:      "type",
	KindTypeParam: "type parameter",
	KindFunc:      "func",
	KindMethod:    "method",
	KindParam:     "param",
	KindVar:       "var",
	KindConst:     "const",
	KindField:     "field",
	KindLabel:     "label",
	KindDoc:       "doc",
	KindComment:   "comment",
	KindString:    "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is a piece of source text subject to spell checking.
type Node struct {
	Kind Kind
	Span Span

	// Text is the name or the text of the node.
	Text string

	// Exported is whether the node is part of the
	// externally visible API of its package.
	Exported bool
}

// Tree is a syntax tree that can be walked for nodes carrying text.
type Tree interface {
	// Walk calls visit for each node of the tree.
	Walk(visit func(Node))
}
