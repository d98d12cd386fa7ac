package validation

import "flowerex/pkg/engine/model"

type Rule interface {
	Check(order *model.Order) error
}

// Chain evaluates rules in a fixed order; the first failure wins and no
// further rules run.
type Chain struct {
	rules []Rule
}

func NewChain() *Chain {
	return &Chain{
		rules: []Rule{
			&PriceRule{},
			&LotSizeRule{},
			&InstrumentRule{instruments: tradableInstruments},
			&SideRule{},
		},
	}
}

func (c *Chain) Check(order *model.Order) error {
	for _, r := range c.rules {
		if err := r.Check(order); err != nil {
			return err
		}
	}
	return nil
}
