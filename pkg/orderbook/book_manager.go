package orderbook

// Manager owns one Book per instrument for a processing run. Books are
// created on first use and live until the run ends; there is a single
// mutator at any time, so a plain map suffices.
type Manager struct {
	books map[string]*Book
}

func NewManager() *Manager {
	return &Manager{
		books: make(map[string]*Book),
	}
}

func (m *Manager) Book(instrument string) *Book {
	if book, ok := m.books[instrument]; ok {
		return book
	}
	book := NewBook(instrument)
	m.books[instrument] = book
	return book
}

// Instruments lists the instruments with a live book, in no particular
// order.
func (m *Manager) Instruments() []string {
	out := make([]string, 0, len(m.books))
	for instrument := range m.books {
		out = append(out, instrument)
	}
	return out
}
