package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate    func(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error)
	MockGetDetail func(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, owner, title, body)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(ctx, id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockAdd    func(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, content any) (domain.AddedComment, error)
	MockDelete func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, content any) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, threadId, owner, content)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	MockAdd    func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId, content any) (domain.AddedReply, error)
	MockDelete func(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId, content any) (domain.AddedReply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, threadId, commentId, owner, content)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, threadId, commentId, replyId, owner)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// newTestRouter mounts the forum routes without auth middleware; identity is injected per request.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.AddComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.AddReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r
}

func newRequest(method, target, body string, user *domain.User) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)
	return rr
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func decodeFail(t *testing.T, rr *httptest.ResponseRecorder) api.Envelope {
	t.Helper()
	var body api.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}
