package parser

import (
	"github.com/glyphspeak/glyphspeak"
)

// ParseExpression is the main entry point of the core: it constructs a parser
// bound to the given rosetta table, tokenizes text, builds the AST, and runs
// the validator. Validation issues are logged but never fail the call; parse
// failures are returned as *ParseError values.
func ParseExpression(text string, table glyphspeak.RosettaTable, options ...Options) (*AstNode, error) {
	p := New(table, options...)

	tokens := p.Tokenize(text)

	root, err := p.Parse(tokens)
	if err != nil {
		return nil, err
	}

	if issues := Validate(root); len(issues) > 0 {
		p.logger.Warn("AST validation issues", "issues", issues)
	}

	return root, nil
}
