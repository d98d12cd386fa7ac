package validation

import "flowerex/pkg/engine/model"

type PriceRule struct{}

func (r *PriceRule) Check(order *model.Order) error {
	if !order.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}
