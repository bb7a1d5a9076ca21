package api

import (
	"github.com/itchan-dev/forum/shared/domain"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every response.
// Data is set on success, Message on failure.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Request DTOs

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Content stays untyped so the service can check the parent exists
// before judging the payload.
type AddCommentRequest struct {
	Content any `json:"content"`
}

type AddReplyRequest struct {
	Content any `json:"content"`
}

// Response DTOs

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
