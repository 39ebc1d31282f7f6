package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

// RecordService drives the record lifecycle: it validates submissions,
// executes them against the remote store and patches the working set from
// confirmed responses. Validation and query-building failures are resolved
// locally and never reach the wire.
type RecordService struct {
	store    ports.RecordStore
	worklist *Worklist
	logger   zerolog.Logger

	// submitting rejects overlapping submissions (the double-click guard).
	// The remote contract carries no sequencing token, so a second in-flight
	// call could otherwise duplicate a create or race a delete against an
	// update on the same id.
	submitting sync.Mutex
}

func NewRecordService(store ports.RecordStore, logger zerolog.Logger) *RecordService {
	return &RecordService{store: store, worklist: NewWorklist(), logger: logger}
}

// Records returns the current working set.
func (s *RecordService) Records() []domain.Record { return s.worklist.Records() }

// Search resolves the lookup dimension and replaces the working set with the
// server's response. An empty result is a valid outcome and still replaces
// the set.
func (s *RecordService) Search(ctx context.Context, sip, ddr, lp string) ([]domain.Record, error) {
	q, err := domain.BuildQuery(sip, ddr, lp)
	if err != nil {
		return nil, err
	}

	if !s.submitting.TryLock() {
		return nil, domain.ErrBusy
	}
	defer s.submitting.Unlock()

	records, err := s.store.Search(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Str("dimension", string(q.Dimension)).Msg("search failed")
		return nil, err
	}

	s.worklist.ReplaceAll(records)
	s.logger.Info().
		Str("dimension", string(q.Dimension)).
		Str("value", q.Value).
		Int("results", len(records)).
		Msg("search completed")
	return s.worklist.Records(), nil
}

// Create validates the draft and submits it. The server assigns the id; the
// record it returns is appended to the working set.
func (s *RecordService) Create(ctx context.Context, draft domain.Record) (*domain.Record, error) {
	if missing := MissingFields(draft); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	if !s.submitting.TryLock() {
		return nil, domain.ErrBusy
	}
	defer s.submitting.Unlock()

	draft.ID = "" // the server owns id assignment
	created, err := s.store.Create(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Str("cliente", draft.Cliente).Msg("create failed")
		return nil, err
	}

	s.worklist.ApplyCreate(*created)
	s.logger.Info().Str("id", created.ID).Str("cliente", created.Cliente).Msg("record created")
	return created, nil
}

// Update validates the record and submits it as a full replacement. The
// response is authoritative and replaces the working-set entry even when
// every field comes back unchanged.
func (s *RecordService) Update(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	if rec.ID == "" {
		return nil, domain.ErrNoID
	}
	if missing := MissingFields(rec); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	if !s.submitting.TryLock() {
		return nil, domain.ErrBusy
	}
	defer s.submitting.Unlock()

	updated, err := s.store.Update(ctx, rec.ID, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("id", rec.ID).Msg("update failed")
		return nil, err
	}

	if !s.worklist.ApplyUpdate(*updated) {
		// The edit is persisted remotely but invisible locally until the
		// next search brings the record back into the set.
		s.logger.Debug().Str("id", updated.ID).Msg("updated record not in working set")
	}
	s.logger.Info().Str("id", updated.ID).Msg("record updated")
	return updated, nil
}

// Delete removes the record remotely, then drops it from the working set
// without re-fetching.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNoID
	}

	if !s.submitting.TryLock() {
		return domain.ErrBusy
	}
	defer s.submitting.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}

	s.worklist.ApplyDelete(id)
	s.logger.Info().Str("id", id).Msg("record deleted")
	return nil
}
