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

func (s *Storage) AddComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	added := domain.AddedComment{Id: domain.NewCommentId(), Content: creationData.Content, Owner: creationData.Owner}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO comments (id, thread_id, content, owner, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, added.Id, creationData.ThreadId, creationData.Content, creationData.Owner, now())
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return domain.AddedComment{}, internal_errors.Persistence(domain.CommentNotPersisted)
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyCommentAvailability(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
        SELECT EXISTS(
            SELECT 1 FROM comments c
            JOIN threads t ON t.id = c.thread_id
            WHERE c.id = $1 AND t.id = $2 AND c.is_delete = FALSE
        )
    `, commentId, threadId).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(domain.CommentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, owner domain.UserId, commentId domain.CommentId) error {
	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", commentId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Authorization(domain.CommentForbidden)
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if actual != owner {
		return internal_errors.Authorization(domain.CommentForbidden)
	}
	return nil
}

func (s *Storage) DeleteCommentById(ctx context.Context, commentId domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = TRUE WHERE id = $1", commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound(domain.CommentNotFound)
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, u.username, c.created_at, c.content, c.is_delete
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.created_at, c.seq
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.CommentDetail, 0)
	for rows.Next() {
		var c domain.CommentDetail
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Date = c.Date.UTC()
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
