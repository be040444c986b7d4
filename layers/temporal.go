package layers

import (
	"sort"

	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// TemporalLayer extracts timing and sequence markers. It orders markers by
// source position; it does not generate timelines or MIDI events.
type TemporalLayer struct{}

func (l *TemporalLayer) Name() string {
	return "temporal"
}

func (l *TemporalLayer) ProcessTokens(tokens []tokenizer.Token) (map[string]any, error) {
	var markers []tokenizer.Token

	for _, token := range tokens {
		if token.Kind == tokenizer.TEMPORAL {
			markers = append(markers, token)
		}
	}

	// The flattened list arrives in tree pre-order; sequence flow follows
	// source positions instead.
	sort.Slice(markers, func(i, j int) bool {
		return markers[i].Position < markers[j].Position
	})

	flow := make([]string, 0, len(markers))
	positions := make([]int, 0, len(markers))

	for _, marker := range markers {
		flow = append(flow, marker.SemanticValue)
		positions = append(positions, marker.Position)
	}

	return map[string]any{
		"timing_markers": flow,
		"sequence_flow":  positions,
	}, nil
}
