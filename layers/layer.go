// Package layers contains the per-modality processors that consume the
// flattened token list produced by the parser. Processors stay shallow on
// purpose: natural-language understanding and real MIDI/timeline generation
// are out of scope, so each layer extracts and groups token data without
// interpreting it.
package layers

import (
	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// Layer processes the flattened token list of a parsed expression for one
// modality.
type Layer interface {
	// Name identifies the layer in composed output.
	Name() string
	// ProcessTokens extracts this modality's view of the token list.
	ProcessTokens(tokens []tokenizer.Token) (map[string]any, error)
}
