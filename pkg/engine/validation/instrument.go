package validation

import "flowerex/pkg/engine/model"

// tradableInstruments is the fixed universe of the venue. Matching is
// exact, case-sensitive.
var tradableInstruments = map[string]struct{}{
	"Rose":     {},
	"Lavender": {},
	"Lotus":    {},
	"Tulip":    {},
	"Orchid":   {},
}

type InstrumentRule struct {
	instruments map[string]struct{}
}

func (r *InstrumentRule) Check(order *model.Order) error {
	if _, ok := r.instruments[order.Instrument]; !ok {
		return ErrInvalidInstrument
	}
	return nil
}
