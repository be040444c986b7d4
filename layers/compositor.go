package layers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/glyphspeak/glyphspeak/tokenizer"
)

// SyncStrategy selects which modality anchors layer alignment.
type SyncStrategy string

const (
	// TemporalPrimary aligns layers against the temporal sequence.
	TemporalPrimary SyncStrategy = "temporal_primary"
	// SemanticPrimary aligns layers against semantic structure.
	SemanticPrimary SyncStrategy = "semantic_primary"
)

// MultiModalMessage is the composed output of all active layers.
type MultiModalMessage struct {
	ID       uuid.UUID
	Strategy SyncStrategy
	Layers   map[string]map[string]any
}

// Compositor runs the active layers over a token list and merges their
// outputs into a single message.
type Compositor struct {
	layers   []Layer
	strategy SyncStrategy
}

// NewCompositor creates a Compositor with the default layer set (semantic and
// temporal) and the temporal-primary sync strategy.
func NewCompositor() *Compositor {
	return &Compositor{
		layers:   []Layer{&SemanticLayer{}, &TemporalLayer{}},
		strategy: TemporalPrimary,
	}
}

// Register adds a layer to the active set.
func (c *Compositor) Register(layer Layer) {
	c.layers = append(c.layers, layer)
}

// SetStrategy switches the sync strategy.
func (c *Compositor) SetStrategy(strategy SyncStrategy) {
	c.strategy = strategy
}

// Compose processes tokens through every active layer. A failing layer fails
// the whole composition; layers themselves treat unknown symbols as ordinary
// core tokens, so flagged tokens pass through untouched.
func (c *Compositor) Compose(tokens []tokenizer.Token) (*MultiModalMessage, error) {
	message := &MultiModalMessage{
		ID:       uuid.New(),
		Strategy: c.strategy,
		Layers:   make(map[string]map[string]any, len(c.layers)),
	}

	for _, layer := range c.layers {
		output, err := layer.ProcessTokens(tokens)
		if err != nil {
			return nil, fmt.Errorf("layer %s failed: %w", layer.Name(), err)
		}

		message.Layers[layer.Name()] = output
	}

	return message, nil
}
