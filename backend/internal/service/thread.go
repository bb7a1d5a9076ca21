package service

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
)

type ThreadService interface {
	Create(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error)
	GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	storage     ThreadStorage
	comments    CommentStorage
	replies     ReplyStorage
	concurrency int
}

func NewThread(storage ThreadStorage, comments CommentStorage, replies ReplyStorage, cfg config.Public) ThreadService {
	concurrency := cfg.ReplyFetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Thread{storage, comments, replies, concurrency}
}

func (b *Thread) Create(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error) {
	creationData, err := domain.NewThreadCreationData(title, body, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := b.storage.CreateThread(ctx, creationData)
	observeMutation("create_thread", err)
	if err != nil {
		return domain.AddedThread{}, err
	}
	logger.FromContext(ctx).Info("thread created", "thread_id", added.Id, "owner", owner)
	return added, nil
}

// GetDetail assembles the thread -> comments -> replies tree.
// Comments and replies keep storage order (oldest first); deleted ones are tombstoned.
func (b *Thread) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := b.storage.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := b.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	replies, err := b.repliesOf(ctx, comments)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	thread.Comments = lo.Map(comments, func(c domain.CommentDetail, i int) domain.CommentDetail {
		return c.Tombstoned(lo.Map(replies[i], func(r domain.ReplyDetail, _ int) domain.ReplyDetail {
			return r.Tombstoned()
		}))
	})
	threadCommentsObserved.Observe(float64(len(thread.Comments)))
	return thread, nil
}

// repliesOf fetches replies for every comment concurrently. result[i] belongs to comments[i].
func (b *Thread) repliesOf(ctx context.Context, comments []domain.CommentDetail) ([][]domain.ReplyDetail, error) {
	result := make([][]domain.ReplyDetail, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, comment := range comments {
		g.Go(func() error {
			replies, err := b.replies.GetRepliesByCommentId(gctx, comment.Id)
			if err != nil {
				return err
			}
			result[i] = replies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
