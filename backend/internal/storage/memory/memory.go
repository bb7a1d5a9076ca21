// Package memory is an in-process implementation of the forum storage
// contracts. It backs the "memory" storage driver and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadRow struct {
	Id        domain.ThreadId
	Title     string
	Body      string
	Owner     domain.UserId
	CreatedAt time.Time
}

type CommentRow struct {
	Id        domain.CommentId
	ThreadId  domain.ThreadId
	Content   string
	Owner     domain.UserId
	IsDeleted bool
	CreatedAt time.Time
	seq       int64
}

type ReplyRow struct {
	Id        domain.ReplyId
	CommentId domain.CommentId
	Content   string
	Owner     domain.UserId
	IsDeleted bool
	CreatedAt time.Time
	seq       int64
}

type Storage struct {
	mu       sync.RWMutex
	now      func() time.Time
	seq      int64
	users    map[domain.UserId]domain.User
	threads  map[domain.ThreadId]ThreadRow
	comments map[domain.CommentId]CommentRow
	replies  map[domain.ReplyId]ReplyRow
}

type Option func(*Storage)

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

func New(opts ...Option) *Storage {
	s := &Storage{
		now:      time.Now,
		users:    make(map[domain.UserId]domain.User),
		threads:  make(map[domain.ThreadId]ThreadRow),
		comments: make(map[domain.CommentId]CommentRow),
		replies:  make(map[domain.ReplyId]ReplyRow),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Cleanup() error {
	return nil
}

// AddUser registers a user so that rows owned by it can be created and joined to a username.
func (s *Storage) AddUser(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Id] = user
}

// PutThread inserts a thread row as is. Meant for seeding.
func (s *Storage) PutThread(row ThreadRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.stamp()
	}
	s.threads[row.Id] = row
}

// PutComment inserts a comment row as is. Meant for seeding.
func (s *Storage) PutComment(row CommentRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.stamp()
	}
	s.seq++
	row.seq = s.seq
	s.comments[row.Id] = row
}

// PutReply inserts a reply row as is. Meant for seeding.
func (s *Storage) PutReply(row ReplyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.stamp()
	}
	s.seq++
	row.seq = s.seq
	s.replies[row.Id] = row
}

// stamp must be called with mu held.
func (s *Storage) stamp() time.Time {
	return s.now().UTC().Round(time.Microsecond)
}

func (s *Storage) username(id domain.UserId) string {
	return s.users[id].Username
}

func (s *Storage) userExists(id domain.UserId) bool {
	_, ok := s.users[id]
	return ok
}

// created_at ascending, insertion order breaks ties
func sortByCreation[T any](rows []T, createdAt func(T) time.Time, seq func(T) int64) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i]), createdAt(rows[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return seq(rows[i]) < seq(rows[j])
	})
}
