package catalog

import (
	_ "embed"
	"slices"
)

//go:embed seed.yaml
var defaultSeed []byte

// DefaultSeed returns a copy of the bundled seed document.
func DefaultSeed() []byte {
	return slices.Clone(defaultSeed)
}

// SeedEntries decodes a seed document in seed order, before sorting.
func SeedEntries(doc []byte) ([]Entry, error) {
	return decodeSeed(doc)
}
