package memory

import (
	"context"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddComment(_ context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[creationData.ThreadId]; !ok || !s.userExists(creationData.Owner) {
		return domain.AddedComment{}, internal_errors.Persistence(domain.CommentNotPersisted)
	}

	s.seq++
	row := CommentRow{
		Id:        domain.NewCommentId(),
		ThreadId:  creationData.ThreadId,
		Content:   creationData.Content,
		Owner:     creationData.Owner,
		CreatedAt: s.stamp(),
		seq:       s.seq,
	}
	s.comments[row.Id] = row
	return domain.AddedComment{Id: row.Id, Content: row.Content, Owner: row.Owner}, nil
}

func (s *Storage) VerifyCommentAvailability(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.comments[commentId]
	if !ok || row.ThreadId != threadId || row.IsDeleted {
		return internal_errors.NotFound(domain.CommentNotFound)
	}
	if _, ok := s.threads[threadId]; !ok {
		return internal_errors.NotFound(domain.CommentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(_ context.Context, owner domain.UserId, commentId domain.CommentId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.comments[commentId]
	if !ok || row.Owner != owner {
		return internal_errors.Authorization(domain.CommentForbidden)
	}
	return nil
}

func (s *Storage) DeleteCommentById(_ context.Context, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.comments[commentId]
	if !ok {
		return internal_errors.NotFound(domain.CommentNotFound)
	}
	row.IsDeleted = true
	s.comments[commentId] = row
	return nil
}

func (s *Storage) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.CommentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []CommentRow
	for _, row := range s.comments {
		if row.ThreadId == threadId {
			rows = append(rows, row)
		}
	}
	sortByCreation(rows,
		func(r CommentRow) time.Time { return r.CreatedAt },
		func(r CommentRow) int64 { return r.seq },
	)

	comments := make([]domain.CommentDetail, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.CommentDetail{
			Id:        row.Id,
			Username:  s.username(row.Owner),
			Date:      row.CreatedAt,
			Content:   row.Content,
			IsDeleted: row.IsDeleted,
		})
	}
	return comments, nil
}
