package models

import (
	"reflect"
	"testing"
)

func TestSnapshot_AddPreservesOrder(t *testing.T) {
	s := NewSnapshot(0)
	s.Add(FileRecord{Name: "b.log", Size: 2})
	s.Add(FileRecord{Name: "a.log", Size: 1})
	s.Add(FileRecord{Name: "c.log", Size: 3})

	want := []string{"b.log", "a.log", "c.log"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.At(1).Name != "a.log" {
		t.Errorf("At(1) = %v, want a.log", s.At(1))
	}
}

func TestSnapshot_AddKeepsNamesUnique(t *testing.T) {
	s := NewSnapshot(2)
	s.Add(FileRecord{Name: "app.log", Size: 10})
	s.Add(FileRecord{Name: "app.log", Size: 50})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	r, ok := s.Find("app.log")
	if !ok || r.Size != 50 {
		t.Errorf("Find(app.log) = %v, %v, want size 50", r, ok)
	}
}

func TestSnapshot_Find(t *testing.T) {
	s := NewSnapshot(1)
	s.Add(FileRecord{Name: "syslog", Size: 7})

	if _, ok := s.Find("missing"); ok {
		t.Error("Find(missing) reported a record")
	}
	if r, ok := s.Find("syslog"); !ok || r.Size != 7 {
		t.Errorf("Find(syslog) = %v, %v", r, ok)
	}
}

func TestSnapshot_NilSafe(t *testing.T) {
	var s *Snapshot
	if s.Len() != 0 {
		t.Errorf("nil Len() = %d", s.Len())
	}
	if _, ok := s.Find("x"); ok {
		t.Error("nil Find() reported a record")
	}
	if s.Names() != nil || s.Records() != nil {
		t.Error("nil snapshot returned records")
	}
}

func TestSnapshot_RecordsIsCopy(t *testing.T) {
	s := NewSnapshot(1)
	s.Add(FileRecord{Name: "a", Size: 1})
	recs := s.Records()
	recs[0].Size = 99
	if s.At(0).Size != 1 {
		t.Error("Records() exposed internal storage")
	}
}
