package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	defaultLength = 16
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type NanoIDGenerator struct {
	prefix string
	length int
}

// NewNanoIDGenerator returns a generator producing "<prefix>_<nanoid>" ids.
// An empty prefix yields bare ids.
func NewNanoIDGenerator(prefix string) *NanoIDGenerator {
	return &NanoIDGenerator{prefix: prefix, length: defaultLength}
}

func (g *NanoIDGenerator) NewID() (string, error) {
	raw, err := gonanoid.Generate(alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	if g.prefix == "" {
		return raw, nil
	}
	return g.prefix + "_" + raw, nil
}
