package orderbook

import (
	"github.com/gammazero/deque"
)

// Book holds the resting orders of one instrument. Each side is a heap of
// occupied price levels plus a FIFO queue per level, so the head of a side
// is always the best-priced, earliest-inserted order (price-time priority).
//
// The three mutators below are the only operations that touch the book;
// nothing else may reorder it or index into it.
type Book struct {
	instrument string

	bidQueues map[float64]*deque.Deque[*Order]
	askQueues map[float64]*deque.Deque[*Order]

	bids *levelHeap
	asks *levelHeap
}

func NewBook(instrument string) *Book {
	return &Book{
		instrument: instrument,
		bidQueues:  make(map[float64]*deque.Deque[*Order]),
		askQueues:  make(map[float64]*deque.Deque[*Order]),
		bids:       newLevelHeap(func(a, b float64) bool { return a > b }), // max-heap
		asks:       newLevelHeap(func(a, b float64) bool { return a < b }), // min-heap
	}
}

func (b *Book) Instrument() string { return b.instrument }

// InsertBuy rests an order on the bid side. Orders at an existing level go
// to the back of the level's queue, preserving arrival order.
func (b *Book) InsertBuy(o *Order) {
	b.insert(b.bidQueues, b.bids, o)
}

// InsertSell rests an order on the ask side.
func (b *Book) InsertSell(o *Order) {
	b.insert(b.askQueues, b.asks, o)
}

func (b *Book) insert(queues map[float64]*deque.Deque[*Order], levels *levelHeap, o *Order) {
	q, ok := queues[o.Price]
	if !ok {
		q = &deque.Deque[*Order]{}
		queues[o.Price] = q
		levels.add(o.Price)
	}
	q.PushBack(o)
}

// BestBuy peeks the highest-priced, earliest bid without removing it.
func (b *Book) BestBuy() (*Order, bool) {
	return b.peek(b.bidQueues, b.bids)
}

// BestSell peeks the lowest-priced, earliest ask without removing it.
func (b *Book) BestSell() (*Order, bool) {
	return b.peek(b.askQueues, b.asks)
}

func (b *Book) peek(queues map[float64]*deque.Deque[*Order], levels *levelHeap) (*Order, bool) {
	price, ok := levels.best()
	if !ok {
		return nil, false
	}
	return queues[price].Front(), true
}

// ReduceOrRemoveHead decrements the head order of the given side by
// fillQty, removing it from the book when its remaining quantity reaches
// zero. A level whose queue empties is dropped from the side's heap.
func (b *Book) ReduceOrRemoveHead(side Side, fillQty int64) error {
	var queues map[float64]*deque.Deque[*Order]
	var levels *levelHeap
	switch side {
	case BUY:
		queues, levels = b.bidQueues, b.bids
	case SELL:
		queues, levels = b.askQueues, b.asks
	default:
		return errUnknownSide
	}

	price, ok := levels.best()
	if !ok {
		return errEmptyBookSide
	}

	q := queues[price]
	head := q.Front()
	head.Qty -= fillQty
	if head.Qty == 0 {
		q.PopFront()
		if q.Len() == 0 {
			levels.removeBest()
			delete(queues, price)
		}
	}
	return nil
}

// Depth reports the number of orders resting on one side.
func (b *Book) Depth(side Side) int {
	queues := b.bidQueues
	if side == SELL {
		queues = b.askQueues
	}
	n := 0
	for _, q := range queues {
		n += q.Len()
	}
	return n
}
