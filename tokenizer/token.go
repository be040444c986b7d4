package tokenizer

import "fmt"

// TokenKind represents the classification of a glyph token
type TokenKind int

const (
	// CORE is the default kind: primary meaning symbols
	CORE TokenKind = iota
	// MODIFIER marks dimensional/contextual modifiers
	MODIFIER
	// OPERATOR marks logical/mathematical operations
	OPERATOR
	// DELIMITER marks the grouping symbols ⟨⟩
	DELIMITER
	// ROUTING marks agent handoff symbols such as →
	ROUTING
	// TEMPORAL marks time/sequence markers such as ⧖
	TEMPORAL
)

// String returns the string representation of TokenKind
func (k TokenKind) String() string {
	switch k {
	case CORE:
		return "CORE"
	case MODIFIER:
		return "MODIFIER"
	case OPERATOR:
		return "OPERATOR"
	case DELIMITER:
		return "DELIMITER"
	case ROUTING:
		return "ROUTING"
	case TEMPORAL:
		return "TEMPORAL"
	default:
		return "UNKNOWN"
	}
}

// Category precedence ranks. Lower value binds tighter and is reduced first
// when popped from the operator stack.
const (
	PrecedenceGrouping  = 0
	PrecedenceRouting   = 1
	PrecedenceTemporal  = 2
	PrecedenceSpatial   = 3
	PrecedenceLogical   = 4
	PrecedenceEmotional = 5
	PrecedenceCore      = 6
	PrecedenceModifier  = 7

	// PrecedenceUnknown is assigned to symbols absent from the rosetta table.
	PrecedenceUnknown = 10
)

// categoryPrecedence maps rosetta category names to their default rank.
var categoryPrecedence = map[string]int{
	"meta":      PrecedenceGrouping,
	"routing":   PrecedenceRouting,
	"temporal":  PrecedenceTemporal,
	"spatial":   PrecedenceSpatial,
	"logical":   PrecedenceLogical,
	"emotional": PrecedenceEmotional,
	"core":      PrecedenceCore,
	"modifier":  PrecedenceModifier,
}

// Grouping delimiter runes
const (
	DelimiterOpen  = '⟨'
	DelimiterClose = '⟩'
)

// Token is a single classified glyph. Position is the raw rune offset in the
// source sequence, counting whitespace (whitespace emits no token but still
// advances the offset). Tokens are immutable once produced.
type Token struct {
	Symbol        string
	Kind          TokenKind
	Precedence    int
	SemanticValue string
	Position      int

	// Err marks tokens substituted for symbols missing from the rosetta
	// table. Tokenization never fails; the validator surfaces these later.
	Err       bool
	ErrReason string
}

// String returns the string representation of Token
func (t Token) String() string {
	return fmt.Sprintf("%s:%s:p%d", t.Symbol, t.Kind, t.Precedence)
}

// IsOpenDelimiter reports whether the token is the grouping open symbol.
func (t Token) IsOpenDelimiter() bool {
	return t.Kind == DELIMITER && t.Symbol == string(DelimiterOpen)
}

// IsCloseDelimiter reports whether the token is the grouping close symbol.
func (t Token) IsCloseDelimiter() bool {
	return t.Kind == DELIMITER && t.Symbol == string(DelimiterClose)
}

// IsOperator reports whether the token shapes the tree as an operator.
// Routing and modifier glyphs participate in precedence reduction exactly
// like operators: routing binds tightest of the three, modifiers bind last
// so a trailing modifier wraps the expression it qualifies.
func (t Token) IsOperator() bool {
	return t.Kind == OPERATOR || t.Kind == ROUTING || t.Kind == MODIFIER
}
