// Package id generates unique IDs for model elements and artifacts.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// NewSequentialIDGenerator returns a generator that produces deterministic,
// monotonically increasing IDs. Deterministic IDs keep repeated runs of the
// same model comparable.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	n := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(n, 10)
}

// NewGlobalIDGenerator returns a generator that produces globally unique IDs.
// Useful for naming artifacts, such as trace databases, that must not collide
// across runs.
func NewGlobalIDGenerator() IDGenerator {
	return globalIDGenerator{}
}

type globalIDGenerator struct{}

func (globalIDGenerator) Generate() string {
	return xid.New().String()
}
