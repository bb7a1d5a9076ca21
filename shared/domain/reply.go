package domain

import "time"

type ReplyCreationData struct {
	CommentId CommentId
	Content   string
	Owner     UserId
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type ReplyDetail struct {
	Id        ReplyId   `json:"id"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Username  string    `json:"username"`
	IsDeleted bool      `json:"-"`
}

func (r ReplyDetail) Tombstoned() ReplyDetail {
	if r.IsDeleted {
		r.Content = DeletedReplyContent
	}
	return r
}
