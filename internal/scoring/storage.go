package scoring

// RecordStorage defines the interface for loading and saving best records
// and finished-game history. This allows for mocking the storage layer
// during tests.
type RecordStorage interface {
	// LoadRecord returns the record for a board size, or NoRecord() if none exists.
	LoadRecord(pairCount int) (BestRecord, error)
	// SaveRecord replaces the record for a board size.
	SaveRecord(pairCount int, rec BestRecord) error
	// AppendEntry adds a finished game to the history.
	AppendEntry(entry HistoryEntry) error
	// LoadEntries returns the finished games for a board size, oldest first.
	LoadEntries(pairCount int) ([]HistoryEntry, error)
}

// MemoryStorage keeps records for the lifetime of the process.
type MemoryStorage struct {
	records map[int]BestRecord
	entries map[int][]HistoryEntry
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[int]BestRecord),
		entries: make(map[int][]HistoryEntry),
	}
}

func (m *MemoryStorage) LoadRecord(pairCount int) (BestRecord, error) {
	rec, ok := m.records[pairCount]
	if !ok {
		return NoRecord(), nil
	}
	return rec, nil
}

func (m *MemoryStorage) SaveRecord(pairCount int, rec BestRecord) error {
	m.records[pairCount] = rec
	return nil
}

func (m *MemoryStorage) AppendEntry(entry HistoryEntry) error {
	m.entries[entry.PairCount] = append(m.entries[entry.PairCount], entry)
	return nil
}

func (m *MemoryStorage) LoadEntries(pairCount int) ([]HistoryEntry, error) {
	entries := m.entries[pairCount]
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
