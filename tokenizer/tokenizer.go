package tokenizer

import (
	"iter"
	"log/slog"
	"strings"
	"unicode"

	"github.com/glyphspeak/glyphspeak"
)

// TokenIterator uses the Go 1.24 iterator pattern
type TokenIterator iter.Seq[Token]

// GlyphTokenizer converts glyph sequences into precedence-aware tokens. It
// holds only immutable configuration (the rosetta table and the fixed
// delimiter/operator sets) and is safe for concurrent use.
type GlyphTokenizer struct {
	table   glyphspeak.RosettaTable
	logger  *slog.Logger
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	// Logger receives debug traces per token and warnings for unknown
	// symbols. Defaults to slog.Default().
	Logger *slog.Logger
}

// operators is the fixed operator glyph set. All members classify at the
// logical category precedence. The routing glyph → is deliberately not in
// this set: it classifies through the rosetta table so it keeps the tighter
// routing precedence.
var operators = map[rune]struct{}{
	'⊕': {},
	'⊗': {},
	'⊙': {},
	'∧': {},
	'∨': {},
}

// New creates a GlyphTokenizer bound to a read-only rosetta table.
func New(table glyphspeak.RosettaTable, options ...TokenizerOptions) *GlyphTokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GlyphTokenizer{
		table:   table,
		logger:  logger,
		options: opts,
	}
}

// Tokens returns an iterator over the tokens of sequence. Whitespace produces
// no token but still advances the position counter, so Token.Position is
// always the raw rune offset in the input.
func (t *GlyphTokenizer) Tokens(sequence string) TokenIterator {
	return func(yield func(Token) bool) {
		t.logger.Debug("tokenizing sequence", "input", sequence)

		position := 0
		for _, char := range sequence {
			if unicode.IsSpace(char) {
				position++
				continue
			}

			token := t.createToken(char, position)
			if token.Err {
				t.logger.Warn("unknown symbol", "symbol", token.Symbol, "position", position)
			} else {
				t.logger.Debug("created token", "token", token.String(), "position", position)
			}

			if !yield(token) {
				return
			}

			position++
		}
	}
}

// Tokenize gets all tokens as a slice. Empty or all-whitespace input yields
// an empty slice, not an error; unknown symbols yield flagged tokens and
// never abort tokenization.
func (t *GlyphTokenizer) Tokenize(sequence string) []Token {
	tokens := make([]Token, 0, len(sequence))
	for token := range t.Tokens(sequence) {
		tokens = append(tokens, token)
	}

	t.logger.Debug("tokenization complete", "count", len(tokens))

	return tokens
}

// createToken classifies a single rune. Classification order: grouping
// delimiters, the fixed operator set, the rosetta table, then the flagged
// unknown-symbol fallback.
func (t *GlyphTokenizer) createToken(char rune, position int) Token {
	if char == DelimiterOpen || char == DelimiterClose {
		side := "open"
		if char == DelimiterClose {
			side = "close"
		}

		return Token{
			Symbol:        string(char),
			Kind:          DELIMITER,
			Precedence:    PrecedenceGrouping,
			SemanticValue: "delimiter_" + side,
			Position:      position,
		}
	}

	if _, ok := operators[char]; ok {
		return Token{
			Symbol:        string(char),
			Kind:          OPERATOR,
			Precedence:    PrecedenceLogical,
			SemanticValue: "operator_" + string(char),
			Position:      position,
		}
	}

	if meta, ok := t.table.Lookup(string(char)); ok {
		kind := classifyCategory(meta.Category)

		semantic := meta.Meaning
		if semantic == "" {
			semantic = string(char)
		}

		return Token{
			Symbol:        string(char),
			Kind:          kind,
			Precedence:    precedenceFor(meta, kind),
			SemanticValue: semantic,
			Position:      position,
		}
	}

	return Token{
		Symbol:        string(char),
		Kind:          CORE,
		Precedence:    PrecedenceUnknown,
		SemanticValue: "UNKNOWN_SYMBOL:" + string(char),
		Position:      position,
		Err:           true,
		ErrReason:     "unknown_symbol",
	}
}

// classifyCategory maps a raw rosetta category string onto the closed
// TokenKind set. Matching is case-insensitive substring matching; anything
// unrecognized falls through to CORE so future category names degrade
// gracefully instead of failing.
func classifyCategory(category string) TokenKind {
	category = strings.ToLower(category)

	switch {
	case strings.Contains(category, "temporal") || strings.Contains(category, "time"):
		return TEMPORAL
	case strings.Contains(category, "modifier") || strings.Contains(category, "dimensional"):
		return MODIFIER
	case strings.Contains(category, "operator") || strings.Contains(category, "logical"):
		return OPERATOR
	case strings.Contains(category, "routing") || strings.Contains(category, "agent"):
		return ROUTING
	default:
		return CORE
	}
}

// precedenceFor resolves a token's precedence: an explicit override in the
// rosetta entry wins, then an exact category name match (this is how the
// spatial and emotional ranks are reached, since those categories classify
// as CORE), otherwise the default rank of the resolved kind.
func precedenceFor(meta glyphspeak.SymbolMeta, kind TokenKind) int {
	if meta.Precedence != nil {
		return *meta.Precedence
	}

	if rank, ok := categoryPrecedence[strings.ToLower(meta.Category)]; ok {
		return rank
	}

	switch kind {
	case DELIMITER:
		return PrecedenceGrouping
	case ROUTING:
		return PrecedenceRouting
	case TEMPORAL:
		return PrecedenceTemporal
	case OPERATOR:
		return PrecedenceLogical
	case MODIFIER:
		return PrecedenceModifier
	default:
		return PrecedenceCore
	}
}
