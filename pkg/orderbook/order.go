package orderbook

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is the book-resident form of an order. Qty is the remaining
// quantity and is decremented in place as fills consume it; Price never
// changes after insertion.
type Order struct {
	ID            string
	ClientOrderID string
	Instrument    string
	Side          Side
	Price         float64
	Qty           int64
}
