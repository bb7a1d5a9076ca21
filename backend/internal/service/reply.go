package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type ReplyService interface {
	Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId, content any) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	comments CommentStorage
	replies  ReplyStorage
}

func NewReply(comments CommentStorage, replies ReplyStorage) ReplyService {
	return &Reply{comments, replies}
}

func (b *Reply) Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId, content any) (domain.AddedReply, error) {
	if err := b.comments.VerifyCommentAvailability(ctx, threadId, commentId); err != nil {
		return domain.AddedReply{}, err
	}

	creationData, err := domain.NewReplyCreationData(commentId, content, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}

	added, err := b.replies.AddReply(ctx, creationData)
	observeMutation("add_reply", err)
	if err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

// Delete follows the same order as Comment.Delete: availability, ownership, then the flag.
func (b *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if err := b.replies.VerifyReplyAvailability(ctx, threadId, commentId, replyId); err != nil {
		return err
	}
	if err := b.replies.VerifyReplyOwner(ctx, owner, replyId); err != nil {
		return err
	}

	err := b.replies.DeleteReplyById(ctx, replyId)
	observeMutation("delete_reply", err)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("reply deleted", "comment_id", commentId, "reply_id", replyId)
	return nil
}
