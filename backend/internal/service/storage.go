package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadStorage interface {
	CreateThread(ctx context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error)
	VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error)
	// VerifyCommentAvailability fails with NotFound unless the comment belongs to the thread and is not deleted.
	VerifyCommentAvailability(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error
	// VerifyCommentOwner ignores the soft-delete flag.
	VerifyCommentOwner(ctx context.Context, owner domain.UserId, commentId domain.CommentId) error
	DeleteCommentById(ctx context.Context, commentId domain.CommentId) error
	// GetCommentsByThreadId returns comments oldest first, deleted ones included.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentDetail, error)
}

type ReplyStorage interface {
	AddReply(ctx context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error)
	// VerifyReplyAvailability checks the whole thread -> comment -> reply chain.
	VerifyReplyAvailability(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, owner domain.UserId, replyId domain.ReplyId) error
	DeleteReplyById(ctx context.Context, replyId domain.ReplyId) error
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyDetail, error)
}
