package orderbook

import "errors"

var (
	errEmptyBookSide = errors.New("book side is empty")
	errUnknownSide   = errors.New("unknown side")
)
