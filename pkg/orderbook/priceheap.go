package orderbook

import "container/heap"

// levelHeap orders the occupied price levels of one book side. The less
// function decides the side's notion of "best": descending for bids,
// ascending for asks. Each price appears at most once.
type levelHeap struct {
	levels []float64
	better func(a, b float64) bool
	seen   map[float64]bool
}

func newLevelHeap(better func(a, b float64) bool) *levelHeap {
	return &levelHeap{
		better: better,
		seen:   make(map[float64]bool),
	}
}

func (h *levelHeap) Len() int           { return len(h.levels) }
func (h *levelHeap) Less(i, j int) bool { return h.better(h.levels[i], h.levels[j]) }
func (h *levelHeap) Swap(i, j int)      { h.levels[i], h.levels[j] = h.levels[j], h.levels[i] }

func (h *levelHeap) Push(x any) {
	price := x.(float64)
	if h.seen[price] {
		return
	}
	h.seen[price] = true
	h.levels = append(h.levels, price)
}

func (h *levelHeap) Pop() any {
	n := len(h.levels)
	price := h.levels[n-1]
	h.levels = h.levels[:n-1]
	delete(h.seen, price)
	return price
}

// best returns the side's best price without removing it.
func (h *levelHeap) best() (float64, bool) {
	if len(h.levels) == 0 {
		return 0, false
	}
	return h.levels[0], true
}

func (h *levelHeap) add(price float64) {
	heap.Push(h, price)
}

func (h *levelHeap) removeBest() float64 {
	return heap.Pop(h).(float64)
}
