package user

import (
	"context"
	"errors"

	"ripple/internal/core/user"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository is the outbound port for the users collection.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// DTOs for the use case.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Profile is the name/avatar snapshot the post service denormalizes
// into posts and comments at creation time.
type Profile struct {
	Name   string
	Avatar string
}

// ProfileDirectory is the read-only view of the user base the post
// service consumes.
type ProfileDirectory interface {
	FindProfile(ctx context.Context, id string) (*Profile, error)
}
