package mastery

import "github.com/abhisek/bloompath/internal/bloom"

// RecordData is the serialized form of a Record, used by the snapshot store.
type RecordData struct {
	Level    string `json:"level,omitempty"`
	Attempts int    `json:"attempts"`
	Mastered bool   `json:"mastered"`
}

// SnapshotData exports the current store contents for persistence.
func (s *Store) SnapshotData() map[string]RecordData {
	out := make(map[string]RecordData, len(s.records))
	for id, r := range s.records {
		out[id] = RecordData{
			Level:    string(r.Level),
			Attempts: r.Attempts,
			Mastered: r.Mastered,
		}
	}
	return out
}

// LoadSnapshot replaces the store contents with previously exported data.
// Unknown level strings load as bloom.None; selection re-initializes them
// to the concept's first declared level on the next pick.
func (s *Store) LoadSnapshot(data map[string]RecordData) {
	s.records = make(map[string]*Record, len(data))
	for id, rd := range data {
		level := bloom.Level(rd.Level)
		if level != bloom.None && !bloom.IsValid(level) {
			level = bloom.None
		}
		s.records[id] = &Record{
			Level:    level,
			Attempts: rd.Attempts,
			Mastered: rd.Mastered,
		}
	}
}
