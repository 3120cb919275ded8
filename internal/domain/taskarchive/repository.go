package taskarchive

import (
	"context"

	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
)

// TaskArchiveRepository defines data access for the append-only archive
// collection. There is no update or delete.
type TaskArchiveRepository interface {
	// InsertMany inserts archive snapshots; runs inside the archival
	// transaction
	InsertMany(ctx context.Context, archives []TaskArchive) error

	// List retrieves every snapshot, newest archival first
	List(ctx context.Context) ([]TaskArchive, error)

	// ListByDay retrieves the snapshots archived on one IST calendar day
	ListByDay(ctx context.Context, day workday.Day) ([]TaskArchive, error)
}
