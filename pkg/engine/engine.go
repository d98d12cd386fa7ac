package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"flowerex/pkg/engine/model"
	reportstore "flowerex/pkg/engine/report_store"
	"flowerex/pkg/engine/validation"
	"flowerex/pkg/logging"
	"flowerex/pkg/orderbook"
)

// Engine owns the order books for all instruments and turns each submitted
// order into its ordered sequence of execution reports. Orders are
// processed one at a time; submission order decides time priority.
type Engine struct {
	books   *orderbook.Manager
	rules   *validation.Chain
	reports reportstore.ReportStore
	idgen   OrderIDGenerator

	now func() time.Time
	log *logging.Logger

	orderCount  atomic.Int64
	matchCount  atomic.Int64
	matchQty    atomic.Int64
	rejectCount atomic.Int64

	mu sync.Mutex
}

type Stats struct {
	Orders     int64
	Matches    int64
	MatchedQty int64
	Rejects    int64
}

func NewEngine(log *logging.Logger) *Engine {
	return &Engine{
		books:   orderbook.NewManager(),
		rules:   validation.NewChain(),
		reports: reportstore.NewInMemoryReportStore(),
		idgen:   NewSequentialIDGenerator(),
		now:     time.Now,
		log:     log,
	}
}

// SetIDGenerator swaps the order ID source. Call before processing starts.
func (e *Engine) SetIDGenerator(g OrderIDGenerator) {
	e.idgen = g
}

func (e *Engine) Books() *orderbook.Manager { return e.books }

func (e *Engine) Reports() reportstore.ReportStore { return e.reports }

func (e *Engine) Stats() Stats {
	return Stats{
		Orders:     e.orderCount.Load(),
		Matches:    e.matchCount.Load(),
		MatchedQty: e.matchQty.Load(),
		Rejects:    e.rejectCount.Load(),
	}
}

// Process validates the order, matches it against the opposing book side
// and rests any remainder. The returned reports are in emission order; the
// same sequence is appended to the report store.
func (e *Engine) Process(ctx context.Context, o *model.Order) []*model.ExecutionReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.orderCount.Add(1)
	if o.OrderID == "" {
		o.OrderID = e.idgen.Next()
	}
	now := e.now()
	o.TransactTime = now

	if err := e.rules.Check(o); err != nil {
		e.rejectCount.Add(1)
		report := model.NewRejectedReport(o, err.Error(), now)
		e.emit(ctx, report)
		return []*model.ExecutionReport{report}
	}

	book := e.books.Book(o.Instrument)
	incoming := &orderbook.Order{
		ID:            o.OrderID,
		ClientOrderID: o.ClientOrderID,
		Instrument:    o.Instrument,
		Side:          bookSide(o.Side),
		Price:         o.Price.InexactFloat64(),
		Qty:           o.Quantity,
	}
	makerSide := bookSide(o.Side.Opposite())

	var reports []*model.ExecutionReport
	matched := false

	for incoming.Qty > 0 {
		resting, ok := e.bestOpposite(book, o.Side)
		if !ok || !crosses(o.Side, incoming.Price, resting.Price) {
			break
		}

		fillQty := min(incoming.Qty, resting.Qty)

		// both sides trade at the resting (maker) price
		aggressor := model.NewFillReport(o.OrderID, o.ClientOrderID, o.Instrument,
			o.Side, fillQty, incoming.Qty, resting.Price, now)
		maker := model.NewFillReport(resting.ID, resting.ClientOrderID, resting.Instrument,
			o.Side.Opposite(), fillQty, resting.Qty, resting.Price, now)

		incoming.Qty -= fillQty
		if err := book.ReduceOrRemoveHead(makerSide, fillQty); err != nil {
			// unreachable after a successful peek
			e.log.Error(ctx, "reduce head failed", zap.Error(err))
			break
		}
		matched = true

		e.matchQty.Add(fillQty)
		if n := e.matchCount.Add(1); n%10000 == 0 {
			e.log.Info(ctx, "match progress",
				zap.Int64("total_matches", n),
				zap.Int64("total_match_qty", e.matchQty.Load()))
		}

		e.emit(ctx, aggressor)
		e.emit(ctx, maker)
		reports = append(reports, aggressor, maker)
	}

	if incoming.Qty > 0 {
		if !matched {
			report := model.NewNewReport(o, now)
			e.emit(ctx, report)
			reports = append(reports, report)
		}
		// a remainder that has already traded rests without a further
		// report
		e.rest(book, incoming)
	}

	return reports
}

func (e *Engine) bestOpposite(book *orderbook.Book, side model.Side) (*orderbook.Order, bool) {
	if side == model.SideBuy {
		return book.BestSell()
	}
	return book.BestBuy()
}

func (e *Engine) rest(book *orderbook.Book, o *orderbook.Order) {
	if o.Side == orderbook.BUY {
		book.InsertBuy(o)
	} else {
		book.InsertSell(o)
	}
}

func (e *Engine) emit(ctx context.Context, r *model.ExecutionReport) {
	e.reports.Append(r)
	e.log.Debug(ctx, "execution report",
		zap.String("order_id", r.OrderID),
		zap.String("cl_ord_id", r.ClientOrderID),
		zap.String("instrument", r.Instrument),
		zap.Stringer("side", r.Side),
		zap.String("status", string(r.Status)),
		zap.Int64("qty", r.Quantity),
		zap.Float64("price", r.Price))
}

// crosses reports whether a maker at makerPrice is matchable by a taker at
// takerPrice: a buy lifts asks at or below its limit, a sell hits bids at
// or above its limit.
func crosses(takerSide model.Side, takerPrice, makerPrice float64) bool {
	if takerSide == model.SideBuy {
		return makerPrice <= takerPrice
	}
	return makerPrice >= takerPrice
}

func bookSide(s model.Side) orderbook.Side {
	if s == model.SideBuy {
		return orderbook.BUY
	}
	return orderbook.SELL
}
