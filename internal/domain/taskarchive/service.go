package taskarchive

import "context"

// TaskArchiveService defines business logic for archival
type TaskArchiveService interface {
	// ArchiveFinished snapshots every completed or approved task and
	// removes it from the live store, atomically. A run with no
	// finished tasks returns a zero count, not an error.
	ArchiveFinished(ctx context.Context) (ArchiveResult, error)

	// ListAll retrieves every snapshot grouped by IST archival day
	ListAll(ctx context.Context) (GroupedArchivesResponse, error)

	// ListByDate retrieves the snapshots for one "YYYY-MM-DD" day
	ListByDate(ctx context.Context, date string) ([]ArchiveResponse, error)
}
