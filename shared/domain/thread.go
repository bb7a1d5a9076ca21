package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title string
	Body  string
	Owner UserId
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// ThreadDetail is the assembled thread view. Storage fills everything but Comments.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
