package taskarchive

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/task"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/taskarchive"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/database"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/validator"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/workday"
	"github.com/opsdesk/opsdesk-backend-go/internal/repository/postgresql"
)

type TaskArchiveServiceImpl struct {
	db *database.DB
	task.TaskRepository
	taskarchive.TaskArchiveRepository
}

func NewTaskArchiveService(db *database.DB, taskRepo task.TaskRepository, archiveRepo taskarchive.TaskArchiveRepository) taskarchive.TaskArchiveService {
	return &TaskArchiveServiceImpl{
		db:                    db,
		TaskRepository:        taskRepo,
		TaskArchiveRepository: archiveRepo,
	}
}

// ArchiveFinished implements taskarchive.TaskArchiveService.
// Select, snapshot and delete run in one transaction, so a failure
// anywhere leaves every task either fully archived or fully live.
func (s *TaskArchiveServiceImpl) ArchiveFinished(ctx context.Context) (taskarchive.ArchiveResult, error) {
	var count int

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		finished, err := s.TaskRepository.ListFinishedForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("failed to load finished tasks: %w", err)
		}

		if len(finished) == 0 {
			return nil
		}

		archivedAt := time.Now().UTC()
		archives := make([]taskarchive.TaskArchive, 0, len(finished))
		ids := make([]string, 0, len(finished))
		for _, t := range finished {
			archives = append(archives, taskarchive.Snapshot(t, archivedAt))
			ids = append(ids, t.ID)
		}

		if err := s.TaskArchiveRepository.InsertMany(txCtx, archives); err != nil {
			return err
		}

		deleted, err := s.TaskRepository.DeleteByIDs(txCtx, ids)
		if err != nil {
			return err
		}
		if deleted != len(ids) {
			return fmt.Errorf("archived %d tasks but deleted %d", len(ids), deleted)
		}

		count = deleted
		return nil
	})
	if err != nil {
		return taskarchive.ArchiveResult{}, err
	}

	return taskarchive.ArchiveResult{ArchivedCount: count}, nil
}

// ListAll implements taskarchive.TaskArchiveService.
func (s *TaskArchiveServiceImpl) ListAll(ctx context.Context) (taskarchive.GroupedArchivesResponse, error) {
	archives, err := s.TaskArchiveRepository.List(ctx)
	if err != nil {
		return taskarchive.GroupedArchivesResponse{}, fmt.Errorf("failed to list archives: %w", err)
	}

	grouped := make(map[string][]taskarchive.ArchiveResponse)
	for _, a := range archives {
		day := workday.FromTime(a.ArchivedAt).String()
		grouped[day] = append(grouped[day], taskarchive.ToResponse(a))
	}

	return taskarchive.GroupedArchivesResponse{
		Archives:      grouped,
		TotalArchives: len(archives),
	}, nil
}

// ListByDate implements taskarchive.TaskArchiveService.
// An empty date returns every snapshot, newest first.
func (s *TaskArchiveServiceImpl) ListByDate(ctx context.Context, date string) ([]taskarchive.ArchiveResponse, error) {
	var archives []taskarchive.TaskArchive
	var err error

	if validator.IsEmpty(date) {
		archives, err = s.TaskArchiveRepository.List(ctx)
	} else {
		var day workday.Day
		day, err = workday.Parse(date)
		if err != nil {
			return nil, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		archives, err = s.TaskArchiveRepository.ListByDay(ctx, day)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list archives by date: %w", err)
	}

	result := make([]taskarchive.ArchiveResponse, 0, len(archives))
	for _, a := range archives {
		result = append(result, taskarchive.ToResponse(a))
	}

	return result, nil
}
