package reportstore

import "flowerex/pkg/engine/model"

// ReportStore keeps every execution report emitted during a run. All
// preserves global emission order; ByOrderID gives one order's lifecycle as
// the ordered sequence of reports carrying its ID.
type ReportStore interface {
	Append(r *model.ExecutionReport)
	ByOrderID(orderID string) []*model.ExecutionReport
	All() []*model.ExecutionReport
	Len() int
}
