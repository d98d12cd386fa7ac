package validation

import "flowerex/pkg/engine/model"

const (
	lotSize     = 10
	minQuantity = 10
	maxQuantity = 1000
)

// LotSizeRule enforces the venue lot constraints: quantity must be a
// multiple of the lot size and within [minQuantity, maxQuantity].
type LotSizeRule struct{}

func (r *LotSizeRule) Check(order *model.Order) error {
	if order.Quantity%lotSize != 0 || order.Quantity < minQuantity || order.Quantity > maxQuantity {
		return ErrInvalidSize
	}
	return nil
}
