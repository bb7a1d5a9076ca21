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

func (s *Storage) AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	added := domain.AddedReply{Id: domain.NewReplyId(), Content: creationData.Content, Owner: creationData.Owner}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO replies (id, comment_id, content, owner, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, added.Id, creationData.CommentId, creationData.Content, creationData.Owner, now())
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return domain.AddedReply{}, internal_errors.Persistence(domain.ReplyNotPersisted)
		}
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

// VerifyReplyAvailability requires the reply to be live and to hang off the
// given comment of the given thread. The parent comment's delete flag is not checked.
func (s *Storage) VerifyReplyAvailability(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
        SELECT EXISTS(
            SELECT 1 FROM replies r
            JOIN comments c ON c.id = r.comment_id
            WHERE r.id = $1 AND c.id = $2 AND c.thread_id = $3 AND r.is_delete = FALSE
        )
    `, replyId, commentId, threadId).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify reply: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", replyId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.Authorization(domain.ReplyForbidden)
		}
		return fmt.Errorf("failed to verify reply owner: %w", err)
	}
	if actual != owner {
		return internal_errors.Authorization(domain.ReplyForbidden)
	}
	return nil
}

func (s *Storage) DeleteReplyById(ctx context.Context, replyId domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_delete = TRUE WHERE id = $1", replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	return nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, r.content, r.created_at, u.username, r.is_delete
        FROM replies r
        JOIN users u ON u.id = r.owner
        WHERE r.comment_id = $1
        ORDER BY r.created_at, r.seq
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := make([]domain.ReplyDetail, 0)
	for rows.Next() {
		var r domain.ReplyDetail
		if err := rows.Scan(&r.Id, &r.Content, &r.Date, &r.Username, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.Date = r.Date.UTC()
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}
	return replies, nil
}
