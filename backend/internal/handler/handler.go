package handler

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/service"
)

// HealthChecker is satisfied by every storage driver.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health HealthChecker) *Handler {
	return &Handler{thread: thread, comment: comment, reply: reply, health: health}
}
