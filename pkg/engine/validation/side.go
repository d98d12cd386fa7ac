package validation

import "flowerex/pkg/engine/model"

type SideRule struct{}

func (r *SideRule) Check(order *model.Order) error {
	if order.Side != model.SideBuy && order.Side != model.SideSell {
		return ErrInvalidSide
	}
	return nil
}
