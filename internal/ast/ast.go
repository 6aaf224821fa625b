// Package ast defines the read-only parse-tree contract the Symbols and
// Codegen passes are built against. The lexer/parser that actually
// produces trees of this shape is an external collaborator this module
// never implements -- this package only fixes the shape both passes
// agree on: a tagged tree
// with child accessors by alternative name and index, mirroring the
// grammar of the ASL language (scalars, fixed arrays, procedures and
// functions).
package ast

import "github.com/hegalit/aslc/internal/logging"

// Node is any element of the parse tree, leaf or branch.
type Node interface {
	// Position spans the entire node.
	Position() *logging.TextPosition
}

// Leaf is a single token retained in the tree (identifiers, literals, and
// the keyword/operator tokens some branches need to know which grammar
// alternative produced them).
type Leaf struct {
	Kind int
	Text string

	Line, Col int
}

// Position of a leaf is the position of the token it holds.
func (l *Leaf) Position() *logging.TextPosition {
	return &logging.TextPosition{
		StartLn: l.Line, StartCol: l.Col - len(l.Text),
		EndLn: l.Line, EndCol: l.Col,
	}
}

// Branch is a named production (or labeled alternative) holding an ordered
// list of children. Op carries the operator/keyword token kind for
// alternatives that share a Name across several operators (arithmetic,
// relational, logical, unary, basic_type); it is zero when not applicable.
type Branch struct {
	Name string
	Op   int

	Content []Node
}

// Position of a branch spans its first to its last child.
func (b *Branch) Position() *logging.TextPosition {
	if len(b.Content) == 0 {
		logging.LogFatal("cannot take the position of an empty branch: " + b.Name)
	}
	if len(b.Content) == 1 {
		return b.Content[0].Position()
	}
	first := b.Content[0].Position()
	last := b.Content[len(b.Content)-1].Position()
	return logging.TextPositionOfSpan(first, last)
}

// Len returns the number of children.
func (b *Branch) Len() int {
	return len(b.Content)
}

// BranchAt casts the child at ndx to a *Branch.
func (b *Branch) BranchAt(ndx int) *Branch {
	return b.Content[ndx].(*Branch)
}

// LeafAt casts the child at ndx to a *Leaf.
func (b *Branch) LeafAt(ndx int) *Leaf {
	return b.Content[ndx].(*Leaf)
}

// Last returns the final child.
func (b *Branch) Last() Node {
	return b.Content[len(b.Content)-1]
}
