package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrUserExists = errors.New("user already exists")
)

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

type Repository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
}
