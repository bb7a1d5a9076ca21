package domain

import "github.com/google/uuid"

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
)

const (
	threadIdPrefix  = "thread-"
	commentIdPrefix = "comment-"
	replyIdPrefix   = "reply-"
)

// Tombstones rendered in place of soft-deleted content.
const (
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)

func NewThreadId() ThreadId   { return threadIdPrefix + uuid.NewString() }
func NewCommentId() CommentId { return commentIdPrefix + uuid.NewString() }
func NewReplyId() ReplyId     { return replyIdPrefix + uuid.NewString() }
