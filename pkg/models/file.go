package models

// FileRecord is one regular file observed in the watched directory
type FileRecord struct {
	Name string `json:"name" yaml:"name"` // Entry name relative to the watched directory
	Size int64  `json:"size" yaml:"size"` // Size in bytes at scan time
}

// Snapshot holds the records of one directory scan in iteration order
type Snapshot struct {
	records []FileRecord
	index   map[string]int
}

// NewSnapshot creates an empty snapshot with room for n records
func NewSnapshot(n int) *Snapshot {
	return &Snapshot{
		records: make([]FileRecord, 0, n),
		index:   make(map[string]int, n),
	}
}

// Add appends a record. A record whose name is already present replaces
// the earlier one in place, so names stay unique.
func (s *Snapshot) Add(r FileRecord) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[r.Name]; ok {
		s.records[i] = r
		return
	}
	s.index[r.Name] = len(s.records)
	s.records = append(s.records, r)
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the i-th record in insertion order
func (s *Snapshot) At(i int) FileRecord {
	return s.records[i]
}

// Find looks up a record by name
func (s *Snapshot) Find(name string) (FileRecord, bool) {
	if s == nil {
		return FileRecord{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return FileRecord{}, false
	}
	return s.records[i], true
}

// Records returns a copy of the records in insertion order
func (s *Snapshot) Records() []FileRecord {
	if s == nil {
		return nil
	}
	out := make([]FileRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Names returns the record names in insertion order
func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.Name
	}
	return names
}
