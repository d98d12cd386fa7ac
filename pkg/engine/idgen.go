package engine

import (
	"fmt"
	"sync/atomic"
)

// OrderIDGenerator assigns engine order IDs. IDs must be unique and
// monotonically increasing within a run.
type OrderIDGenerator interface {
	Next() string
}

// SequentialIDGenerator issues ORD1, ORD2, ... starting from 1.
type SequentialIDGenerator struct {
	counter atomic.Int64
}

func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

func (g *SequentialIDGenerator) Next() string {
	return fmt.Sprintf("ORD%d", g.counter.Add(1))
}

// Reset rewinds the counter so the next ID is ORD1 again. Only for tests
// and replay tooling.
func (g *SequentialIDGenerator) Reset() {
	g.counter.Store(0)
}
