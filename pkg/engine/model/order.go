package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side uses the inbound wire encoding: 1 = Buy, 2 = Sell.
type Side int

const (
	SideBuy  Side = 1
	SideSell Side = 2
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

type Order struct {
	// supplied by the submitter
	ClientOrderID string
	Instrument    string
	Side          Side
	Quantity      int64
	Price         decimal.Decimal

	// assigned by the engine
	OrderID      string
	TransactTime time.Time
}
