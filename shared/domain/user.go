package domain

type User struct {
	Id       UserId
	Username string
}
