package domain

import (
	"strings"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// Fixed validation messages, one per payload kind.
const (
	ThreadPayloadMissing  = "cannot create a new thread: required property missing"
	ThreadPayloadType     = "cannot create a new thread: wrong property type"
	CommentPayloadMissing = "cannot create a new comment on the thread: required property missing"
	CommentPayloadType    = "cannot create a new comment on the thread: wrong property type"
	ReplyPayloadMissing   = "cannot create a new reply on the comment: required property missing"
	ReplyPayloadType      = "cannot create a new reply on the comment: wrong property type"
)

func required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// payloadString takes a decoded JSON value as-is. Absent and blank values
// are missing, anything that is not a string has the wrong type.
func payloadString(v any, missing, wrongType string) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", internal_errors.Validation(missing)
	case string:
		if !required(s) {
			return "", internal_errors.Validation(missing)
		}
		return s, nil
	default:
		return "", internal_errors.Validation(wrongType)
	}
}

func NewThreadCreationData(title, body string, owner UserId) (ThreadCreationData, error) {
	if !required(title, body, owner) {
		return ThreadCreationData{}, internal_errors.Validation(ThreadPayloadMissing)
	}
	return ThreadCreationData{Title: title, Body: body, Owner: owner}, nil
}

// NewCommentCreationData validates content taken straight from the request
// body, so callers can run it after the thread lookup.
func NewCommentCreationData(threadId ThreadId, content any, owner UserId) (CommentCreationData, error) {
	if !required(threadId, owner) {
		return CommentCreationData{}, internal_errors.Validation(CommentPayloadMissing)
	}
	text, err := payloadString(content, CommentPayloadMissing, CommentPayloadType)
	if err != nil {
		return CommentCreationData{}, err
	}
	return CommentCreationData{ThreadId: threadId, Content: text, Owner: owner}, nil
}

func NewReplyCreationData(commentId CommentId, content any, owner UserId) (ReplyCreationData, error) {
	if !required(commentId, owner) {
		return ReplyCreationData{}, internal_errors.Validation(ReplyPayloadMissing)
	}
	text, err := payloadString(content, ReplyPayloadMissing, ReplyPayloadType)
	if err != nil {
		return ReplyCreationData{}, err
	}
	return ReplyCreationData{CommentId: commentId, Content: text, Owner: owner}, nil
}
