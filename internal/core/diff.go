package core

import "github.com/mxgoldstein/log-current/pkg/models"

// Diff returns the records of after that are new or whose size differs
// from the record of the same name in before, in after's order
func Diff(before, after *models.Snapshot) *models.Snapshot {
	return diff(before, after, after.Len())
}

// FirstChanged is Diff stopped at the first changed record. Which record
// that is depends on directory iteration order.
func FirstChanged(before, after *models.Snapshot) *models.Snapshot {
	return diff(before, after, 1)
}

func diff(before, after *models.Snapshot, limit int) *models.Snapshot {
	changed := models.NewSnapshot(0)
	for i := 0; i < after.Len() && changed.Len() < limit; i++ {
		rec := after.At(i)
		if prev, ok := before.Find(rec.Name); ok && prev.Size == rec.Size {
			continue
		}
		changed.Add(rec)
	}
	return changed
}
