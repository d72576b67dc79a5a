// Package random provides seed generation and PCG sources for the simulation engine.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG source seeded with seed. The source is not safe for concurrent use.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
