// Package sqlite provides a SQLite-backed users storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/userboard/internal/platform/storage/sqlmigrate"
	"github.com/louisbranch/userboard/internal/services/users/storage"
	"github.com/louisbranch/userboard/internal/services/users/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists users, posts and comments in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite users store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlmigrate.ApplyMigrations(context.Background(), sqlDB, sqlmigrate.SQLite, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// PutUser inserts one user.
func (s *Store) PutUser(ctx context.Context, user storage.User) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	user, err := storage.NormalizeUser(user, s.now)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO users (id, name, email, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, toMillis(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// PutPost inserts one post for an existing user.
func (s *Store) PutPost(ctx context.Context, post storage.Post) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	post, err := storage.NormalizePost(post, s.now)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, title, created_at) VALUES (?, ?, ?, ?)`,
		post.ID, post.UserID, post.Title, toMillis(post.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("put post: %w", err)
	}
	return nil
}

// PutComment inserts one comment on an existing post.
func (s *Store) PutComment(ctx context.Context, comment storage.Comment) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	comment, err := storage.NormalizeComment(comment, s.now)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO comments (id, user_id, post_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.UserID, comment.PostID, comment.Body, toMillis(comment.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("put comment: %w", err)
	}
	return nil
}

// ListUserSummaries returns every user with post and comment counts,
// oldest first.
func (s *Store) ListUserSummaries(ctx context.Context) ([]storage.UserSummary, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, u.created_at,
		        (SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id),
		        (SELECT COUNT(*) FROM comments c WHERE c.user_id = u.id)
		   FROM users u
		  ORDER BY u.created_at ASC, u.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list user summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]storage.UserSummary, 0)
	for rows.Next() {
		var summary storage.UserSummary
		var createdAt int64
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Email,
			&createdAt,
			&summary.PostCount,
			&summary.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("list user summaries: %w", err)
		}
		summary.CreatedAt = fromMillis(createdAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user summaries: %w", err)
	}
	return summaries, nil
}

// DeleteUser removes a user with its posts and comments.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Comments left by others on this user's posts go with the posts.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comments
		  WHERE user_id = ?
		     OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`,
		userID, userID,
	); err != nil {
		return fmt.Errorf("delete user comments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete user posts: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.Store = (*Store)(nil)
