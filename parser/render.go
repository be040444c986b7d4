package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Render produces an indented, human-readable representation of the tree:
// one line per node in pre-order, two spaces of indentation per depth level.
// Glyphs are padded by display width (most of the symbolic alphabet is
// East-Asian wide) so the kind column lines up. The output is a pure function
// of tree shape and is meant for diagnostics, not for round-tripping.
func Render(root *AstNode) string {
	if root == nil {
		return ""
	}

	var b strings.Builder

	renderNode(&b, root, 0, maxSymbolWidth(root))

	return b.String()
}

func renderNode(b *strings.Builder, node *AstNode, indent, symbolWidth int) {
	pad := symbolWidth - displayWidth(node.Token.Symbol)

	fmt.Fprintf(b, "%s%s%s %s p%d %s\n",
		strings.Repeat("  ", indent),
		node.Token.Symbol,
		strings.Repeat(" ", pad),
		node.Token.Kind,
		node.Token.Precedence,
		node.Token.SemanticValue,
	)

	for _, child := range node.Children {
		renderNode(b, child, indent+1, symbolWidth)
	}
}

func maxSymbolWidth(node *AstNode) int {
	w := displayWidth(node.Token.Symbol)
	for _, child := range node.Children {
		if cw := maxSymbolWidth(child); cw > w {
			w = cw
		}
	}

	return w
}

// displayWidth counts terminal columns, treating East-Asian wide and
// fullwidth runes as two columns.
func displayWidth(s string) int {
	w := 0

	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}

	return w
}
