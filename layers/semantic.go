package layers

import (
	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// SemanticLayer extracts core meaning and symbolic structure.
type SemanticLayer struct{}

func (l *SemanticLayer) Name() string {
	return "semantic"
}

// ProcessTokens groups semantic values by role: primary meanings from core
// symbols, context modifiers, and the logical operator structure in source
// order.
func (l *SemanticLayer) ProcessTokens(tokens []tokenizer.Token) (map[string]any, error) {
	var (
		meanings  []string
		modifiers []string
		structure []string
	)

	for _, token := range tokens {
		switch token.Kind {
		case tokenizer.CORE:
			meanings = append(meanings, token.SemanticValue)
		case tokenizer.MODIFIER:
			modifiers = append(modifiers, token.SemanticValue)
		case tokenizer.OPERATOR, tokenizer.ROUTING:
			structure = append(structure, token.Symbol)
		}
	}

	return map[string]any{
		"primary_meaning":   meanings,
		"context_modifiers": modifiers,
		"logical_structure": structure,
	}, nil
}
