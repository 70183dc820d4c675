// Package storage defines persistence contracts for users service state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested user record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a record with the same id already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// User stores one account row. Name is optional.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Post stores one post authored by a user.
type Post struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
}

// Comment stores one comment authored by a user on a post.
type Comment struct {
	ID        string
	UserID    string
	PostID    string
	Body      string
	CreatedAt time.Time
}

// UserSummary is a user with its aggregate post and comment counts.
type UserSummary struct {
	User
	PostCount    int
	CommentCount int
}

// Store persists users and the content they own.
//
// DeleteUser removes the user together with its posts and comments and
// returns ErrNotFound when no such user exists.
type Store interface {
	PutUser(ctx context.Context, user User) error
	PutPost(ctx context.Context, post Post) error
	PutComment(ctx context.Context, comment Comment) error
	ListUserSummaries(ctx context.Context) ([]UserSummary, error)
	DeleteUser(ctx context.Context, userID string) error
	Close() error
}
