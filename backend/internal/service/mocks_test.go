package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// --- Mocks ---

// callLog records storage calls in order, shared by all mocks of a test.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	log                          *callLog
	createThreadFunc             func(creationData domain.ThreadCreationData) (domain.AddedThread, error)
	verifyThreadAvailabilityFunc func(id domain.ThreadId) error
	getThreadByIdFunc            func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadStorage) CreateThread(_ context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	m.log.record("CreateThread")
	if m.createThreadFunc != nil {
		return m.createThreadFunc(creationData)
	}
	return domain.AddedThread{Id: "thread-0001", Title: creationData.Title, Owner: creationData.Owner}, nil
}

func (m *MockThreadStorage) VerifyThreadAvailability(_ context.Context, id domain.ThreadId) error {
	m.log.record("VerifyThreadAvailability")
	if m.verifyThreadAvailabilityFunc != nil {
		return m.verifyThreadAvailabilityFunc(id)
	}
	return nil
}

func (m *MockThreadStorage) GetThreadById(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	m.log.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadDetail{Id: id}, nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	log                           *callLog
	addCommentFunc                func(creationData domain.CommentCreationData) (domain.AddedComment, error)
	verifyCommentAvailabilityFunc func(threadId domain.ThreadId, commentId domain.CommentId) error
	verifyCommentOwnerFunc        func(owner domain.UserId, commentId domain.CommentId) error
	deleteCommentByIdFunc         func(commentId domain.CommentId) error
	getCommentsByThreadIdFunc     func(threadId domain.ThreadId) ([]domain.CommentDetail, error)
}

func (m *MockCommentStorage) AddComment(_ context.Context, creationData domain.CommentCreationData) (domain.AddedComment, error) {
	m.log.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(creationData)
	}
	return domain.AddedComment{Id: "comment-0001", Content: creationData.Content, Owner: creationData.Owner}, nil
}

func (m *MockCommentStorage) VerifyCommentAvailability(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	m.log.record("VerifyCommentAvailability")
	if m.verifyCommentAvailabilityFunc != nil {
		return m.verifyCommentAvailabilityFunc(threadId, commentId)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(_ context.Context, owner domain.UserId, commentId domain.CommentId) error {
	m.log.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(owner, commentId)
	}
	return nil
}

func (m *MockCommentStorage) DeleteCommentById(_ context.Context, commentId domain.CommentId) error {
	m.log.record("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(commentId)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.CommentDetail, error) {
	m.log.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	log                         *callLog
	addReplyFunc                func(creationData domain.ReplyCreationData) (domain.AddedReply, error)
	verifyReplyAvailabilityFunc func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
	verifyReplyOwnerFunc        func(owner domain.UserId, replyId domain.ReplyId) error
	deleteReplyByIdFunc         func(replyId domain.ReplyId) error
	getRepliesByCommentIdFunc   func(commentId domain.CommentId) ([]domain.ReplyDetail, error)
}

func (m *MockReplyStorage) AddReply(_ context.Context, creationData domain.ReplyCreationData) (domain.AddedReply, error) {
	m.log.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(creationData)
	}
	return domain.AddedReply{Id: "reply-0001", Content: creationData.Content, Owner: creationData.Owner}, nil
}

func (m *MockReplyStorage) VerifyReplyAvailability(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	m.log.record("VerifyReplyAvailability")
	if m.verifyReplyAvailabilityFunc != nil {
		return m.verifyReplyAvailabilityFunc(threadId, commentId, replyId)
	}
	return nil
}

func (m *MockReplyStorage) VerifyReplyOwner(_ context.Context, owner domain.UserId, replyId domain.ReplyId) error {
	m.log.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(owner, replyId)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReplyById(_ context.Context, replyId domain.ReplyId) error {
	m.log.record("DeleteReplyById")
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(replyId)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByCommentId(_ context.Context, commentId domain.CommentId) ([]domain.ReplyDetail, error) {
	m.log.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return nil, nil
}
