package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

func (s *Storage) CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	added := domain.AddedThread{Id: domain.NewThreadId(), Title: creationData.Title, Owner: creationData.Owner}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO threads (id, title, body, owner, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, added.Id, creationData.Title, creationData.Body, creationData.Owner, now())
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return domain.AddedThread{}, internal_errors.Persistence(domain.ThreadNotPersisted)
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(domain.ThreadNotFound)
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	var thread domain.ThreadDetail
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.created_at, u.username
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, internal_errors.NotFound(domain.ThreadNotFound)
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to get thread: %w", err)
	}
	thread.Date = thread.Date.UTC()
	return thread, nil
}
