package domain

import "time"

type CommentCreationData struct {
	ThreadId ThreadId
	Content  string
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	IsDeleted bool          `json:"-"`
	Replies   []ReplyDetail `json:"replies"`
}

// Tombstoned returns the client view: deleted content is replaced and replies are attached.
func (c CommentDetail) Tombstoned(replies []ReplyDetail) CommentDetail {
	if c.IsDeleted {
		c.Content = DeletedCommentContent
	}
	if replies == nil {
		replies = []ReplyDetail{}
	}
	c.Replies = replies
	return c
}
