package parser

import (
	"fmt"
	"log/slog"

	"github.com/glyphspeak/glyphspeak"
	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// Parser builds precedence-ordered ASTs from glyph token sequences using a
// modified shunting-yard algorithm: routing and modifier glyphs reduce like
// operators, and any plain symbol is a valid operand, not just literals. The
// parser holds
// only immutable configuration and is safe for concurrent use; every Parse
// call produces a fresh, exclusively owned tree.
type Parser struct {
	table     glyphspeak.RosettaTable
	tokenizer *tokenizer.GlyphTokenizer
	logger    *slog.Logger
}

// Options are options for the parser
type Options struct {
	// Logger receives debug traces and validation warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// New creates a Parser bound to a read-only rosetta table.
func New(table glyphspeak.RosettaTable, options ...Options) *Parser {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{
		table:     table,
		tokenizer: tokenizer.New(table, tokenizer.TokenizerOptions{Logger: logger}),
		logger:    logger,
	}
}

// Tokenize converts a glyph sequence into precedence-aware tokens. See
// tokenizer.GlyphTokenizer.Tokenize for the position convention.
func (p *Parser) Tokenize(sequence string) []tokenizer.Token {
	return p.tokenizer.Tokenize(sequence)
}

// Parse builds the AST for a token sequence and returns its root.
func (p *Parser) Parse(tokens []tokenizer.Token) (*AstNode, error) {
	if len(tokens) == 0 {
		return nil, newParseError(ErrEmptyInput, ErrEmptyInput.Error(), -1, "")
	}

	p.logger.Debug("building AST", "tokens", len(tokens))

	// Single token needs no stack machinery.
	if len(tokens) == 1 {
		return &AstNode{Token: tokens[0]}, nil
	}

	root, err := buildExpressionTree(tokens)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("AST built", "depth", root.Depth())

	return root, nil
}

// treeBuilder holds the two working stacks of the shunting-yard variant: an
// operand stack of built nodes and an operator stack of pending tokens, which
// also carries open-delimiter markers.
type treeBuilder struct {
	operands  []*AstNode
	operators []tokenizer.Token
}

func buildExpressionTree(tokens []tokenizer.Token) (*AstNode, error) {
	b := &treeBuilder{}

	for _, token := range tokens {
		switch {
		case token.IsOpenDelimiter():
			b.operators = append(b.operators, token)

		case token.IsCloseDelimiter():
			// Reduce until the matching open delimiter surfaces.
			for len(b.operators) > 0 && !b.top().IsOpenDelimiter() {
				b.reduce()
			}

			if len(b.operators) == 0 {
				return nil, newParseError(ErrMismatchedDelimiter, "closing delimiter has no matching open", token.Position, token.Symbol)
			}

			b.operators = b.operators[:len(b.operators)-1]

		case token.IsOperator():
			// Pop everything that binds at least as tightly (lower or
			// equal precedence number reduces first).
			for len(b.operators) > 0 && !b.top().IsOpenDelimiter() && b.top().Precedence <= token.Precedence {
				b.reduce()
			}

			b.operators = append(b.operators, token)

		default:
			b.operands = append(b.operands, &AstNode{Token: token})
		}
	}

	for len(b.operators) > 0 {
		if top := b.top(); top.IsOpenDelimiter() {
			return nil, newParseError(ErrMismatchedDelimiter, "opening delimiter is never closed", top.Position, top.Symbol)
		}

		b.reduce()
	}

	if len(b.operands) != 1 {
		message := fmt.Sprintf("expression has %d root candidates, want exactly 1", len(b.operands))
		return nil, newParseError(ErrMalformedExpression, message, -1, "")
	}

	return b.operands[0], nil
}

func (b *treeBuilder) top() tokenizer.Token {
	return b.operators[len(b.operators)-1]
}

// reduce pops one operator token and wraps it around the available operands:
// two operands form a binary node (left attaches as child 0 so source order
// is preserved), one operand forms a unary node, and zero operands leave a
// childless operator node. The result is pushed back onto the operand stack.
func (b *treeBuilder) reduce() {
	token := b.operators[len(b.operators)-1]
	b.operators = b.operators[:len(b.operators)-1]

	node := &AstNode{Token: token}

	switch {
	case len(b.operands) >= 2:
		right := b.operands[len(b.operands)-1]
		left := b.operands[len(b.operands)-2]
		b.operands = b.operands[:len(b.operands)-2]

		node.AddChild(left)
		node.AddChild(right)
	case len(b.operands) == 1:
		child := b.operands[len(b.operands)-1]
		b.operands = b.operands[:len(b.operands)-1]

		node.AddChild(child)
	}

	b.operands = append(b.operands, node)
}
