package orderbook

import (
	"testing"
)

func TestBestBuyIsHighestPrice(t *testing.T) {
	b := NewBook("Rose")
	b.InsertBuy(&Order{ID: "B1", Side: BUY, Price: 50, Qty: 100})
	b.InsertBuy(&Order{ID: "B2", Side: BUY, Price: 55, Qty: 100})
	b.InsertBuy(&Order{ID: "B3", Side: BUY, Price: 52, Qty: 100})

	best, ok := b.BestBuy()
	if !ok || best.ID != "B2" {
		t.Fatalf("expected B2 at head, got %+v ok=%v", best, ok)
	}
}

func TestBestSellIsLowestPrice(t *testing.T) {
	b := NewBook("Rose")
	b.InsertSell(&Order{ID: "S1", Side: SELL, Price: 60, Qty: 100})
	b.InsertSell(&Order{ID: "S2", Side: SELL, Price: 58, Qty: 100})
	b.InsertSell(&Order{ID: "S3", Side: SELL, Price: 59, Qty: 100})

	best, ok := b.BestSell()
	if !ok || best.ID != "S2" {
		t.Fatalf("expected S2 at head, got %+v ok=%v", best, ok)
	}
}

func TestEqualPriceKeepsArrivalOrder(t *testing.T) {
	b := NewBook("Tulip")
	b.InsertBuy(&Order{ID: "A", Side: BUY, Price: 50, Qty: 10})
	b.InsertBuy(&Order{ID: "B", Side: BUY, Price: 50, Qty: 10})

	best, _ := b.BestBuy()
	if best.ID != "A" {
		t.Fatalf("expected A before B, got %s", best.ID)
	}

	if err := b.ReduceOrRemoveHead(BUY, 10); err != nil {
		t.Fatal(err)
	}
	best, _ = b.BestBuy()
	if best.ID != "B" {
		t.Fatalf("expected B after A removed, got %s", best.ID)
	}
}

func TestPeekEmptySide(t *testing.T) {
	b := NewBook("Lotus")
	if _, ok := b.BestBuy(); ok {
		t.Fatal("expected empty bid side")
	}
	if _, ok := b.BestSell(); ok {
		t.Fatal("expected empty ask side")
	}
}

func TestReduceKeepsPartialHead(t *testing.T) {
	b := NewBook("Orchid")
	b.InsertSell(&Order{ID: "S1", Side: SELL, Price: 40, Qty: 100})

	if err := b.ReduceOrRemoveHead(SELL, 30); err != nil {
		t.Fatal(err)
	}
	best, ok := b.BestSell()
	if !ok || best.ID != "S1" || best.Qty != 70 {
		t.Fatalf("expected S1 with qty 70 still at head, got %+v", best)
	}
	if b.Depth(SELL) != 1 {
		t.Fatalf("expected depth 1, got %d", b.Depth(SELL))
	}
}

func TestRemoveHeadDropsEmptyLevel(t *testing.T) {
	b := NewBook("Orchid")
	b.InsertSell(&Order{ID: "S1", Side: SELL, Price: 40, Qty: 50})
	b.InsertSell(&Order{ID: "S2", Side: SELL, Price: 45, Qty: 50})

	if err := b.ReduceOrRemoveHead(SELL, 50); err != nil {
		t.Fatal(err)
	}
	best, ok := b.BestSell()
	if !ok || best.ID != "S2" {
		t.Fatalf("expected S2 at head after level 40 drained, got %+v", best)
	}
	if b.Depth(SELL) != 1 {
		t.Fatalf("expected depth 1, got %d", b.Depth(SELL))
	}
}

func TestReduceEmptySide(t *testing.T) {
	b := NewBook("Lavender")
	if err := b.ReduceOrRemoveHead(BUY, 10); err != errEmptyBookSide {
		t.Fatalf("expected errEmptyBookSide, got %v", err)
	}
	if err := b.ReduceOrRemoveHead("HOLD", 10); err != errUnknownSide {
		t.Fatalf("expected errUnknownSide, got %v", err)
	}
}

func TestManagerReturnsSameBook(t *testing.T) {
	m := NewManager()
	b1 := m.Book("Rose")
	b1.InsertBuy(&Order{ID: "B1", Side: BUY, Price: 50, Qty: 10})

	b2 := m.Book("Rose")
	if b2.Depth(BUY) != 1 {
		t.Fatal("expected the same book on second lookup")
	}
	if len(m.Instruments()) != 1 {
		t.Fatalf("expected 1 instrument, got %d", len(m.Instruments()))
	}
}
