package memory

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) CreateThread(_ context.Context, creationData domain.ThreadCreationData) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.userExists(creationData.Owner) {
		return domain.AddedThread{}, internal_errors.Persistence(domain.ThreadNotPersisted)
	}

	row := ThreadRow{
		Id:        domain.NewThreadId(),
		Title:     creationData.Title,
		Body:      creationData.Body,
		Owner:     creationData.Owner,
		CreatedAt: s.stamp(),
	}
	s.threads[row.Id] = row
	return domain.AddedThread{Id: row.Id, Title: row.Title, Owner: row.Owner}, nil
}

func (s *Storage) VerifyThreadAvailability(_ context.Context, id domain.ThreadId) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[id]; !ok {
		return internal_errors.NotFound(domain.ThreadNotFound)
	}
	return nil
}

func (s *Storage) GetThreadById(_ context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.threads[id]
	if !ok {
		return domain.ThreadDetail{}, internal_errors.NotFound(domain.ThreadNotFound)
	}
	return domain.ThreadDetail{
		Id:       row.Id,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.CreatedAt,
		Username: s.username(row.Owner),
	}, nil
}
