package storage

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeUser trims fields, checks required values and defaults CreatedAt.
func NormalizeUser(user User, now func() time.Time) (User, error) {
	user.ID = strings.TrimSpace(user.ID)
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.ID == "" {
		return User{}, fmt.Errorf("user id is required")
	}
	if user.Email == "" {
		return User{}, fmt.Errorf("user email is required")
	}
	user.CreatedAt = defaultTime(user.CreatedAt, now)
	return user, nil
}

// NormalizePost trims fields, checks required values and defaults CreatedAt.
func NormalizePost(post Post, now func() time.Time) (Post, error) {
	post.ID = strings.TrimSpace(post.ID)
	post.UserID = strings.TrimSpace(post.UserID)
	post.Title = strings.TrimSpace(post.Title)
	if post.ID == "" {
		return Post{}, fmt.Errorf("post id is required")
	}
	if post.UserID == "" {
		return Post{}, fmt.Errorf("post user id is required")
	}
	post.CreatedAt = defaultTime(post.CreatedAt, now)
	return post, nil
}

// NormalizeComment trims fields, checks required values and defaults CreatedAt.
func NormalizeComment(comment Comment, now func() time.Time) (Comment, error) {
	comment.ID = strings.TrimSpace(comment.ID)
	comment.UserID = strings.TrimSpace(comment.UserID)
	comment.PostID = strings.TrimSpace(comment.PostID)
	if comment.ID == "" {
		return Comment{}, fmt.Errorf("comment id is required")
	}
	if comment.UserID == "" {
		return Comment{}, fmt.Errorf("comment user id is required")
	}
	if comment.PostID == "" {
		return Comment{}, fmt.Errorf("comment post id is required")
	}
	comment.CreatedAt = defaultTime(comment.CreatedAt, now)
	return comment, nil
}

func defaultTime(value time.Time, now func() time.Time) time.Time {
	if !value.IsZero() {
		return value.UTC()
	}
	if now == nil {
		now = time.Now
	}
	return now().UTC()
}
