package ports

import (
	"context"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

// RecordStore performs the four remote operations against the provisioning
// data service. Every call is single-shot: no retry, no coalescing, no cache.
// Implementations translate transport and protocol failures into
// *domain.OpError carrying the server's reason when one was given.
type RecordStore interface {
	// Search issues the dimension-specific lookup. An empty result set is a
	// valid outcome, distinct from failure.
	Search(ctx context.Context, q domain.Query) ([]domain.Record, error)
	// Create submits a draft without an id; the store assigns one.
	Create(ctx context.Context, draft domain.Record) (*domain.Record, error)
	// Update replaces the stored record wholesale. The returned record is
	// authoritative and must replace the local copy.
	Update(ctx context.Context, id string, rec domain.Record) (*domain.Record, error)
	Delete(ctx context.Context, id string) error
}
