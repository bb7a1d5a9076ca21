package memory

import (
	"context"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddReply(_ context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[creationData.CommentId]; !ok || !s.userExists(creationData.Owner) {
		return domain.AddedReply{}, internal_errors.Persistence(domain.ReplyNotPersisted)
	}

	s.seq++
	row := ReplyRow{
		Id:        domain.NewReplyId(),
		CommentId: creationData.CommentId,
		Content:   creationData.Content,
		Owner:     creationData.Owner,
		CreatedAt: s.stamp(),
		seq:       s.seq,
	}
	s.replies[row.Id] = row
	return domain.AddedReply{Id: row.Id, Content: row.Content, Owner: row.Owner}, nil
}

func (s *Storage) VerifyReplyAvailability(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reply, ok := s.replies[replyId]
	if !ok || reply.CommentId != commentId || reply.IsDeleted {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	comment, ok := s.comments[commentId]
	if !ok || comment.ThreadId != threadId {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	if _, ok := s.threads[threadId]; !ok {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(_ context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.replies[replyId]
	if !ok || row.Owner != owner {
		return internal_errors.Authorization(domain.ReplyForbidden)
	}
	return nil
}

func (s *Storage) DeleteReplyById(_ context.Context, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.replies[replyId]
	if !ok {
		return internal_errors.NotFound(domain.ReplyNotFound)
	}
	row.IsDeleted = true
	s.replies[replyId] = row
	return nil
}

func (s *Storage) GetRepliesByCommentId(_ context.Context, commentId domain.CommentId) ([]domain.ReplyDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []ReplyRow
	for _, row := range s.replies {
		if row.CommentId == commentId {
			rows = append(rows, row)
		}
	}
	sortByCreation(rows,
		func(r ReplyRow) time.Time { return r.CreatedAt },
		func(r ReplyRow) int64 { return r.seq },
	)

	replies := make([]domain.ReplyDetail, 0, len(rows))
	for _, row := range rows {
		replies = append(replies, domain.ReplyDetail{
			Id:        row.Id,
			Content:   row.Content,
			Date:      row.CreatedAt,
			Username:  s.username(row.Owner),
			IsDeleted: row.IsDeleted,
		})
	}
	return replies, nil
}
