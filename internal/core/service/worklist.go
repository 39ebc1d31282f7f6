package service

import "github.com/fiberops/circuitdesk/internal/core/domain"

// Worklist owns the in-memory working set produced by the last search.
// Mutations come exclusively from confirmed server responses; nothing else
// writes to the set. Not safe for concurrent use on its own; the record
// service serializes submissions in front of it.
type Worklist struct {
	records []domain.Record
}

func NewWorklist() *Worklist { return &Worklist{} }

// ReplaceAll discards the previous working set entirely. No merge.
func (w *Worklist) ReplaceAll(records []domain.Record) {
	w.records = make([]domain.Record, len(records))
	copy(w.records, records)
}

// ApplyCreate appends a newly created record. Drafts without a server id
// never enter the working set; they live only as form state until the create
// round-trip confirms them. If the id is somehow already present the entry is
// replaced instead, keeping ids unique.
func (w *Worklist) ApplyCreate(rec domain.Record) {
	if rec.ID == "" {
		return
	}
	if i := w.indexOf(rec.ID); i >= 0 {
		w.records[i] = rec
		return
	}
	w.records = append(w.records, rec)
}

// ApplyUpdate replaces the entry whose id matches and reports whether one was
// found. An update for a record outside the working set is dropped: it will
// only appear after the next search. That gap is accepted, not patched here.
func (w *Worklist) ApplyUpdate(rec domain.Record) bool {
	if rec.ID == "" {
		return false
	}
	i := w.indexOf(rec.ID)
	if i < 0 {
		return false
	}
	w.records[i] = rec
	return true
}

// ApplyDelete removes the entry with the given id, if present.
func (w *Worklist) ApplyDelete(id string) bool {
	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	w.records = append(w.records[:i], w.records[i+1:]...)
	return true
}

// Records returns a copy of the working set in display order.
func (w *Worklist) Records() []domain.Record {
	out := make([]domain.Record, len(w.records))
	copy(out, w.records)
	return out
}

func (w *Worklist) Len() int { return len(w.records) }

func (w *Worklist) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range w.records {
		if w.records[i].ID == id {
			return i
		}
	}
	return -1
}
