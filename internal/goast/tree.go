// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goast presents parsed Go source files as spelling trees.
package goast

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/kortschak/spellck/internal/spelling"
)

// Options specifies which text in a file is presented for checking in
// addition to names and doc comments.
type Options struct {
	// Comments includes comments that are not
	// documentation.
	Comments bool

	// Strings includes string literal values.
	Strings bool

	// Entropy, if not nil, excludes string literals
	// that are unlikely to be prose.
	Entropy *EntropyFilter
}

// Tree is a parsed Go source file.
type Tree struct {
	fset *token.FileSet
	file *ast.File
	tok  *token.File
	src  []byte

	opts Options
}

// Parse parses the Go source in src and returns it as a Tree.
func Parse(fset *token.FileSet, filename string, src []byte, opts Options) (*Tree, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	return New(fset, f, src, opts), nil
}

// New returns a Tree for an already parsed file. The file must have been
// parsed with comments. If src is nil, source lines are not available.
func New(fset *token.FileSet, file *ast.File, src []byte, opts Options) *Tree {
	return &Tree{
		fset: fset,
		file: file,
		tok:  fset.File(file.Pos()),
		src:  src,
		opts: opts,
	}
}

// File returns the syntax of the tree.
func (t *Tree) File() *ast.File { return t.file }

// Walk calls visit for each name, doc comment and, depending on the
// tree's options, comment and string literal in the file.
func (t *Tree) Walk(visit func(spelling.Node)) {
	w := &walker{
		tree:  t,
		visit: visit,
		docs:  make(map[*ast.CommentGroup]bool),
	}
	w.walkFile(t.file)
	if t.opts.Comments {
		for _, g := range t.file.Comments {
			if w.docs[g] {
				continue
			}
			w.emit(spelling.KindComment, g.Pos(), g.End(), g.Text(), false)
		}
	}
}

// walker holds the state of a single walk.
type walker struct {
	tree  *Tree
	visit func(spelling.Node)

	// docs is the set of comment groups that
	// have been presented as documentation.
	docs map[*ast.CommentGroup]bool
}

func (w *walker) emit(kind spelling.Kind, pos, end token.Pos, text string, exported bool) {
	if text == "" {
		return
	}
	tok := w.tree.tok
	sp, err := spelling.NewSpan(tok.Offset(pos), tok.Offset(end))
	if err != nil {
		return
	}
	w.visit(spelling.Node{Kind: kind, Span: sp, Text: text, Exported: exported})
}

func (w *walker) name(kind spelling.Kind, id *ast.Ident, exported bool) {
	if id == nil || id.Name == "_" {
		return
	}
	w.emit(kind, id.Pos(), id.End(), id.Name, exported)
}

func (w *walker) doc(g *ast.CommentGroup, exported bool) {
	if g == nil || w.docs[g] {
		return
	}
	w.docs[g] = true
	w.emit(spelling.KindDoc, g.Pos(), g.End(), g.Text(), exported)
}

func (w *walker) walkFile(f *ast.File) {
	w.doc(f.Doc, true)
	w.name(spelling.KindPackage, f.Name, true)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			w.genDecl(d, true)
		case *ast.FuncDecl:
			w.funcDecl(d)
		}
	}
}

func (w *walker) funcDecl(d *ast.FuncDecl) {
	kind := spelling.KindFunc
	visible := d.Name.IsExported()
	if d.Recv != nil {
		kind = spelling.KindMethod
		visible = visible && len(d.Recv.List) != 0 && ast.IsExported(recvTypeName(d.Recv.List[0].Type))
		w.fields(spelling.KindParam, d.Recv, visible)
	}
	w.doc(d.Doc, visible)
	w.name(kind, d.Name, visible)
	w.funcType(d.Type, visible)
	if d.Body != nil {
		ast.Walk(local{w}, d.Body)
	}
}

// recvTypeName returns the name of the base type of a method receiver.
func recvTypeName(typ ast.Expr) string {
	for {
		switch t := typ.(type) {
		case *ast.ParenExpr:
			typ = t.X
		case *ast.StarExpr:
			typ = t.X
		case *ast.IndexExpr:
			typ = t.X
		case *ast.IndexListExpr:
			typ = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}

func (w *walker) funcType(t *ast.FuncType, visible bool) {
	if t == nil {
		return
	}
	w.fields(spelling.KindTypeParam, t.TypeParams, visible)
	w.fields(spelling.KindParam, t.Params, visible)
	w.fields(spelling.KindParam, t.Results, visible)
}

// fields presents the names in a parameter or result list. Struct fields
// and interface methods are handled by typeExpr.
func (w *walker) fields(kind spelling.Kind, list *ast.FieldList, visible bool) {
	if list == nil {
		return
	}
	for _, f := range list.List {
		for _, n := range f.Names {
			w.name(kind, n, visible)
		}
		w.typeExpr(f.Type, visible)
	}
}

// genDecl presents the names declared by d. Names are visible if top is
// true and they are exported.
func (w *walker) genDecl(d *ast.GenDecl, top bool) {
	var declVisible bool
	for _, s := range d.Specs {
		switch s := s.(type) {
		case *ast.ImportSpec:
			if s.Name != nil && s.Name.Name != "." {
				w.name(spelling.KindImport, s.Name, false)
			}
			w.doc(s.Doc, false)
		case *ast.TypeSpec:
			visible := top && s.Name.IsExported()
			declVisible = declVisible || visible
			w.doc(s.Doc, visible)
			w.name(spelling.KindType, s.Name, visible)
			w.fields(spelling.KindTypeParam, s.TypeParams, visible)
			w.typeExpr(s.Type, visible)
		case *ast.ValueSpec:
			kind := spelling.KindVar
			if d.Tok == token.CONST {
				kind = spelling.KindConst
			}
			var visible bool
			for _, n := range s.Names {
				v := top && n.IsExported()
				visible = visible || v
				w.name(kind, n, v)
			}
			declVisible = declVisible || visible
			w.doc(s.Doc, visible)
			w.typeExpr(s.Type, visible)
			for _, v := range s.Values {
				ast.Walk(local{w}, v)
			}
		}
	}
	w.doc(d.Doc, declVisible)
}

// typeExpr presents the field and method names and docs within a type
// expression. Members are visible if the enclosing declaration is visible
// and they are exported.
func (w *walker) typeExpr(typ ast.Expr, visible bool) {
	switch t := typ.(type) {
	case *ast.StructType:
		for _, f := range t.Fields.List {
			v := visible && (len(f.Names) == 0 || anyExported(f.Names))
			w.doc(f.Doc, v)
			for _, n := range f.Names {
				w.name(spelling.KindField, n, visible && n.IsExported())
			}
			w.typeExpr(f.Type, v)
		}
	case *ast.InterfaceType:
		for _, f := range t.Methods.List {
			v := visible && (len(f.Names) == 0 || anyExported(f.Names))
			w.doc(f.Doc, v)
			for _, n := range f.Names {
				w.name(spelling.KindMethod, n, v)
			}
			w.typeExpr(f.Type, v)
		}
	case *ast.FuncType:
		w.funcType(t, visible)
	case *ast.StarExpr:
		w.typeExpr(t.X, visible)
	case *ast.ParenExpr:
		w.typeExpr(t.X, visible)
	case *ast.ArrayType:
		w.typeExpr(t.Elt, visible)
	case *ast.MapType:
		w.typeExpr(t.Key, visible)
		w.typeExpr(t.Value, visible)
	case *ast.ChanType:
		w.typeExpr(t.Value, visible)
	case *ast.Ellipsis:
		w.typeExpr(t.Elt, visible)
	}
}

func anyExported(names []*ast.Ident) bool {
	for _, n := range names {
		if n.IsExported() {
			return true
		}
	}
	return false
}

// local is an ast.Visitor presenting the names declared in function
// bodies and initializer expressions. None of these is visible outside
// the package.
type local struct {
	*walker
}

// Visit walks the AST presenting local declarations and string literals.
func (v local) Visit(n ast.Node) ast.Visitor {
	switch n := n.(type) {
	case *ast.DeclStmt:
		if d, ok := n.Decl.(*ast.GenDecl); ok {
			v.genDecl(d, false)
		}
		return nil
	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			for _, e := range n.Lhs {
				if id, ok := e.(*ast.Ident); ok {
					v.name(spelling.KindVar, id, false)
				}
			}
		}
	case *ast.RangeStmt:
		if n.Tok == token.DEFINE {
			for _, e := range []ast.Expr{n.Key, n.Value} {
				if id, ok := e.(*ast.Ident); ok {
					v.name(spelling.KindVar, id, false)
				}
			}
		}
	case *ast.LabeledStmt:
		v.name(spelling.KindLabel, n.Label, false)
	case *ast.FuncLit:
		v.funcType(n.Type, false)
		ast.Walk(v, n.Body)
		return nil
	case *ast.CompositeLit:
		// Keys of composite literals refer to names
		// declared elsewhere.
		v.typeExpr(n.Type, false)
		for _, e := range n.Elts {
			if kv, ok := e.(*ast.KeyValueExpr); ok {
				if _, ok := kv.Key.(*ast.Ident); ok {
					ast.Walk(v, kv.Value)
					continue
				}
			}
			ast.Walk(v, e)
		}
		return nil
	case *ast.BasicLit:
		if n.Kind == token.STRING && v.tree.opts.Strings {
			v.str(n)
		}
	}
	return v
}

func (w *walker) str(lit *ast.BasicLit) {
	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		// This should never happen.
		text = lit.Value
	}
	if w.tree.opts.Entropy.Reject(text, lit.Value[0] == '"') {
		return
	}
	w.emit(spelling.KindString, lit.Pos(), lit.End(), text, false)
}

// Location returns the file:line:column position of the start of the
// span.
func (t *Tree) Location(sp spelling.Span) string {
	pos, _ := t.Pos(sp)
	return t.fset.Position(pos).String()
}

// Pos returns the token positions of the start and end of the span.
func (t *Tree) Pos(sp spelling.Span) (pos, end token.Pos) {
	return t.tok.Pos(int(sp.Start)), t.tok.Pos(int(sp.End))
}

// Line returns the physical line number of the start of the span,
// ignoring //line directives.
func (t *Tree) Line(sp spelling.Span) int {
	pos, _ := t.Pos(sp)
	return t.tok.PositionFor(pos, false).Line
}

// FirstLine returns the source line holding the start of the span and the
// byte offset of the span start within it.
func (t *Tree) FirstLine(sp spelling.Span) (line string, col int, ok bool) {
	off := int(sp.Start)
	if t.src == nil || off > len(t.src) {
		return "", 0, false
	}
	start := bytes.LastIndexByte(t.src[:off], '\n') + 1
	end := bytes.IndexByte(t.src[start:], '\n')
	if end < 0 {
		end = len(t.src) - start
	}
	return string(bytes.TrimSuffix(t.src[start:start+end], []byte{'\r'})), off - start, true
}
