package model

import "time"

type Status string

const (
	StatusNew         Status = "New"
	StatusRejected    Status = "Rejected"
	StatusFill        Status = "Fill"
	StatusPartialFill Status = "PartialFill"
)

// ExecutionReport records one event affecting one order. Reports are
// immutable once created; an order's lifecycle is the ordered sequence of
// reports carrying its OrderID.
type ExecutionReport struct {
	OrderID       string
	ClientOrderID string
	Instrument    string
	Side          Side
	Status        Status
	Reason        string // non-empty only when Status is Rejected
	Quantity      int64  // quantity of this event, not the order's original
	Price         float64
	TransactTime  time.Time
}

func NewRejectedReport(o *Order, reason string, ts time.Time) *ExecutionReport {
	return &ExecutionReport{
		OrderID:       o.OrderID,
		ClientOrderID: o.ClientOrderID,
		Instrument:    o.Instrument,
		Side:          o.Side,
		Status:        StatusRejected,
		Reason:        reason,
		Quantity:      o.Quantity,
		Price:         o.Price.InexactFloat64(),
		TransactTime:  ts,
	}
}

func NewNewReport(o *Order, ts time.Time) *ExecutionReport {
	return &ExecutionReport{
		OrderID:       o.OrderID,
		ClientOrderID: o.ClientOrderID,
		Instrument:    o.Instrument,
		Side:          o.Side,
		Status:        StatusNew,
		Quantity:      o.Quantity,
		Price:         o.Price.InexactFloat64(),
		TransactTime:  ts,
	}
}

// NewFillReport builds a Fill or PartialFill depending on whether the fill
// consumes the order's full remaining quantity.
func NewFillReport(orderID, clientOrderID, instrument string, side Side, fillQty, remainingQty int64, price float64, ts time.Time) *ExecutionReport {
	status := StatusPartialFill
	if fillQty == remainingQty {
		status = StatusFill
	}
	return &ExecutionReport{
		OrderID:       orderID,
		ClientOrderID: clientOrderID,
		Instrument:    instrument,
		Side:          side,
		Status:        status,
		Quantity:      fillQty,
		Price:         price,
		TransactTime:  ts,
	}
}
