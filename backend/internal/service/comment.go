package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type CommentService interface {
	Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, content any) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

func NewComment(threads ThreadStorage, comments CommentStorage) CommentService {
	return &Comment{threads, comments}
}

func (b *Comment) Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, content any) (domain.AddedComment, error) {
	if err := b.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	creationData, err := domain.NewCommentCreationData(threadId, content, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}

	added, err := b.comments.AddComment(ctx, creationData)
	observeMutation("add_comment", err)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

// Delete checks availability strictly before ownership, so deleting an
// already deleted comment is NotFound even for its owner.
func (b *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := b.comments.VerifyCommentAvailability(ctx, threadId, commentId); err != nil {
		return err
	}
	if err := b.comments.VerifyCommentOwner(ctx, owner, commentId); err != nil {
		return err
	}

	err := b.comments.DeleteCommentById(ctx, commentId)
	observeMutation("delete_comment", err)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("comment deleted", "thread_id", threadId, "comment_id", commentId)
	return nil
}
