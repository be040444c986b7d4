package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/glyphspeak/glyphspeak"
	"github.com/glyphspeak/glyphspeak/tokenizer"
)

func testTable() glyphspeak.RosettaTable {
	return glyphspeak.RosettaTable{
		"⧖": {Meaning: "temporal_marker", Category: "temporal"},
		"♦": {Meaning: "emotional_context", Category: "modifier/emotional"},
		"⬢": {Meaning: "spatial_frame", Category: "modifier/spatial"},
		"→": {Meaning: "agent_handoff", Category: "routing"},
		"◉": {Meaning: "focus", Category: "core"},
	}
}

func parseExpr(t *testing.T, input string) *AstNode {
	t.Helper()

	root, err := ParseExpression(input, testTable())
	assert.NoError(t, err)
	assert.NotZero(t, root)

	return root
}

func TestParseEmptyInput(t *testing.T) {
	p := New(testTable())

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace only", input: " \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(p.Tokenize(tt.input))
			assert.IsError(t, err, ErrEmptyInput)
		})
	}
}

func TestParseSingleSymbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "core symbol", input: "◉"},
		{name: "modifier symbol", input: "♦"},
		{name: "operator symbol", input: "⊕"},
		{name: "unknown symbol", input: "☿"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseExpr(t, tt.input)
			assert.True(t, root.IsLeaf())
			assert.Equal(t, 0, root.Depth())
			assert.Equal(t, tt.input, root.Token.Symbol)
		})
	}
}

func TestBalancedGrouping(t *testing.T) {
	root := parseExpr(t, "⟨◉⟩")

	assert.True(t, root.IsLeaf())
	assert.Equal(t, "◉", root.Token.Symbol)

	// Delimiters are structural only and never become tree nodes.
	for _, token := range root.Flatten() {
		assert.NotEqual(t, tokenizer.DELIMITER, token.Kind)
	}
}

func TestMismatchedDelimiters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		symbol   string
		position int
	}{
		{
			name:     "unclosed open delimiter",
			input:    "⟨⊕⧖",
			symbol:   "⟨",
			position: 0,
		},
		{
			name:     "leading close delimiter",
			input:    "⟩◉",
			symbol:   "⟩",
			position: 0,
		},
		{
			name:     "extra close delimiter",
			input:    "⟨◉⟩⟩",
			symbol:   "⟩",
			position: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpression(tt.input, testTable())
			assert.IsError(t, err, ErrMismatchedDelimiter)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.symbol, parseErr.Symbol)
			assert.Equal(t, tt.position, parseErr.Position)
		})
	}
}

func TestMalformedExpression(t *testing.T) {
	_, err := ParseExpression("◉ ◉", testTable())
	assert.IsError(t, err, ErrMalformedExpression)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Message, "2 root candidates")
	assert.Equal(t, -1, parseErr.Position)
}

func TestGroupedExpressionWithTrailingModifier(t *testing.T) {
	// The modifier binds last, so it wraps the grouped subexpression.
	root := parseExpr(t, "⟨⊕⧖⟩♦")

	assert.Equal(t, "♦", root.Token.Symbol)
	assert.Equal(t, tokenizer.MODIFIER, root.Token.Kind)
	assert.Equal(t, 1, len(root.Children))

	group := root.Children[0]
	assert.Equal(t, "⊕", group.Token.Symbol)
	assert.Equal(t, 1, len(group.Children))
	assert.Equal(t, "⧖", group.Children[0].Token.Symbol)
}

func TestRoutingBindsBeforeLogical(t *testing.T) {
	// → has routing precedence 1, so the stack-popping rule reduces it
	// before the logical ⊕ takes its operands.
	root := parseExpr(t, "→⊕⧖")

	assert.Equal(t, "⊕", root.Token.Symbol)
	assert.Equal(t, 2, len(root.Children))

	routing := root.Children[0]
	assert.Equal(t, "→", routing.Token.Symbol)
	assert.True(t, routing.IsLeaf())

	assert.Equal(t, "⧖", root.Children[1].Token.Symbol)
}

func TestPrecedenceOrdering(t *testing.T) {
	// Whichever side the tighter-binding routing operator appears on, it
	// forms the deeper subtree and the looser logical operator stays at
	// the root.
	tests := []struct {
		name  string
		input string
	}{
		{name: "routing first", input: "◉→◉⊕◉"},
		{name: "routing last", input: "◉⊕◉→◉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseExpr(t, tt.input)

			assert.Equal(t, "⊕", root.Token.Symbol)
			assert.Equal(t, 2, len(root.Children))
			assert.Equal(t, 2, root.Depth())

			var deeper *AstNode
			for _, child := range root.Children {
				if !child.IsLeaf() {
					deeper = child
				}
			}

			assert.NotZero(t, deeper)
			assert.Equal(t, "→", deeper.Token.Symbol)
			assert.Equal(t, 2, len(deeper.Children))
		})
	}
}

func TestUnknownSymbolParsesToCompletion(t *testing.T) {
	root := parseExpr(t, "⊕☿⊗")

	issues := Validate(root)
	assert.Equal(t, 1, len(issues))
	assert.Contains(t, issues[0], "☿")
	assert.Contains(t, issues[0], "position 1")
}

func TestValidateCleanTree(t *testing.T) {
	root := parseExpr(t, "◉→⧖")
	assert.Equal(t, 0, len(Validate(root)))

	assert.Equal(t, 0, len(Validate(nil)))
}

func TestChildlessOperatorTolerated(t *testing.T) {
	// An operator reduced with no operands in reach stays a childless
	// node; the single-root check still holds.
	root := parseExpr(t, "⟨⟩⊕")

	assert.Equal(t, "⊕", root.Token.Symbol)
	assert.True(t, root.IsLeaf())
}

func TestFlattenPreOrder(t *testing.T) {
	root := parseExpr(t, "→⊕⧖")

	symbols := make([]string, 0, 3)
	for _, token := range root.Flatten() {
		symbols = append(symbols, token.Symbol)
	}

	assert.Equal(t, []string{"⊕", "→", "⧖"}, symbols)
}

func TestParseIsPureFunctionOfInput(t *testing.T) {
	first := parseExpr(t, "⟨⊕⧖⟩♦")
	second := parseExpr(t, "⟨⊕⧖⟩♦")

	// Fresh trees per call, identical shape.
	assert.NotZero(t, first)
	assert.Equal(t, Render(first), Render(second))
	assert.Equal(t, first.Flatten(), second.Flatten())
}
