package glyphspeak

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// RosettaEnvVar names the environment variable that points at the default
// rosetta table file. A .env file in the working directory is honored.
const RosettaEnvVar = "GLYPHSPEAK_ROSETTA"

// SymbolMeta is the metadata attached to a single glyph in the rosetta table.
// Precedence is a pointer so an explicit 0 can be distinguished from "use the
// category default".
type SymbolMeta struct {
	Meaning    string `yaml:"meaning"`
	Category   string `yaml:"category"`
	Precedence *int   `yaml:"precedence,omitempty"`
}

// RosettaTable maps a single-rune glyph to its metadata. The table is loaded
// once and treated as read-only for the lifetime of any parser bound to it.
type RosettaTable map[string]SymbolMeta

// Lookup returns the metadata for a glyph and whether it is known.
func (r RosettaTable) Lookup(symbol string) (SymbolMeta, bool) {
	meta, ok := r[symbol]
	return meta, ok
}

// LoadRosetta reads a rosetta table from a YAML document. Keys must be single
// runes; entries with multi-rune keys fail validation because the tokenizer
// only lexes one rune at a time.
func LoadRosetta(path string) (RosettaTable, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrRosettaNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rosetta table: %w", err)
	}

	var table RosettaTable

	err = yaml.Unmarshal(data, &table)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rosetta table: %w", err)
	}

	if err := validateRosetta(table); err != nil {
		return nil, err
	}

	return table, nil
}

// DefaultRosettaPath resolves the table path from the environment, falling
// back to the given default when the variable is unset.
func DefaultRosettaPath(fallback string) string {
	if path := os.Getenv(RosettaEnvVar); path != "" {
		return path
	}

	return fallback
}

func validateRosetta(table RosettaTable) error {
	if len(table) == 0 {
		return ErrEmptyRosetta
	}

	for symbol, meta := range table {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("%w: key %q must be a single rune", ErrRosettaValidation, symbol)
		}

		if meta.Category == "" {
			return fmt.Errorf("%w: symbol %q has no category", ErrRosettaValidation, symbol)
		}
	}

	return nil
}

func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}
