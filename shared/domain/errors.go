package domain

// Fixed user-facing messages returned by every storage backend.
const (
	ThreadNotFound   = "thread not found"
	CommentNotFound  = "thread or comment not found"
	ReplyNotFound    = "thread, comment or reply not found"
	CommentForbidden = "you are not allowed to modify or delete this comment"
	ReplyForbidden   = "you are not allowed to modify or delete this reply"

	ThreadNotPersisted  = "failed to create thread: owner does not exist"
	CommentNotPersisted = "failed to add comment: thread or owner does not exist"
	ReplyNotPersisted   = "failed to add reply: comment or owner does not exist"
)
