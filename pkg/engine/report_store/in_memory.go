package reportstore

import (
	"sync"

	"flowerex/pkg/engine/model"
)

type InMemoryReportStore struct {
	mu      sync.RWMutex
	seq     []*model.ExecutionReport
	byOrder map[string][]*model.ExecutionReport
}

func NewInMemoryReportStore() *InMemoryReportStore {
	return &InMemoryReportStore{
		byOrder: make(map[string][]*model.ExecutionReport),
	}
}

func (s *InMemoryReportStore) Append(r *model.ExecutionReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq = append(s.seq, r)
	s.byOrder[r.OrderID] = append(s.byOrder[r.OrderID], r)
}

func (s *InMemoryReportStore) ByOrderID(orderID string) []*model.ExecutionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.byOrder[orderID]
}

func (s *InMemoryReportStore) All() []*model.ExecutionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.ExecutionReport, len(s.seq))
	copy(out, s.seq)
	return out
}

func (s *InMemoryReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.seq)
}
