package parser

import "fmt"

// Validate recursively walks the tree and reports one issue string per node
// carrying an error flag (propagated from unknown-symbol tokens at tokenize
// time). It only reports; flagged nodes are never repaired or removed.
func Validate(root *AstNode) []string {
	if root == nil {
		return nil
	}

	var issues []string

	if root.Token.Err {
		issues = append(issues, fmt.Sprintf("error token in AST: %s at position %d (%s)", root.Token.Symbol, root.Token.Position, root.Token.ErrReason))
	}

	for _, child := range root.Children {
		issues = append(issues, Validate(child)...)
	}

	return issues
}
