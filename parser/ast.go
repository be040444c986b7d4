package parser

import (
	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// AstNode is a node of the parsed expression tree. Children are exclusively
// owned by their parent; the tree is built bottom-up and never mutated after
// Parse returns. There is no parent back-pointer.
type AstNode struct {
	Token    tokenizer.Token
	Children []*AstNode
}

// AddChild appends a child node, preserving source order.
func (n *AstNode) AddChild(child *AstNode) {
	n.Children = append(n.Children, child)
}

// IsLeaf reports whether the node is a terminal symbol.
func (n *AstNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Depth returns the height of the subtree: 0 for leaves, 1 + the maximum
// child depth otherwise.
func (n *AstNode) Depth() int {
	if n.IsLeaf() {
		return 0
	}

	maxDepth := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > maxDepth {
			maxDepth = d
		}
	}

	return 1 + maxDepth
}

// Flatten returns the pre-order token list (node before children, children in
// stored order). This is the surface downstream layer processors consume.
func (n *AstNode) Flatten() []tokenizer.Token {
	tokens := []tokenizer.Token{n.Token}
	for _, child := range n.Children {
		tokens = append(tokens, child.Flatten()...)
	}

	return tokens
}
