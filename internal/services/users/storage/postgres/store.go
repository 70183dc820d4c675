// Package postgres provides a PostgreSQL-backed users storage implementation.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/louisbranch/userboard/internal/platform/storage/sqlmigrate"
	"github.com/louisbranch/userboard/internal/services/users/storage"
	"github.com/louisbranch/userboard/internal/services/users/storage/postgres/migrations"
)

const uniqueViolation pq.ErrorCode = "23505"

// Store persists users, posts and comments in PostgreSQL.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open connects to PostgreSQL with dsn and applies embedded migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if err := sqlmigrate.ApplyMigrations(ctx, sqlDB, sqlmigrate.Postgres, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the connection pool.
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
		`INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.Email, user.CreatedAt.UnixMilli(),
	)
	return mapWriteError("put user", err)
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
		`INSERT INTO posts (id, user_id, title, created_at) VALUES ($1, $2, $3, $4)`,
		post.ID, post.UserID, post.Title, post.CreatedAt.UnixMilli(),
	)
	return mapWriteError("put post", err)
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
		`INSERT INTO comments (id, user_id, post_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.UserID, comment.PostID, comment.Body, comment.CreatedAt.UnixMilli(),
	)
	return mapWriteError("put comment", err)
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
		summary.CreatedAt = time.UnixMilli(createdAt).UTC()
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user summaries: %w", err)
	}
	return summaries, nil
}

// DeleteUser removes a user; posts and comments follow via ON DELETE CASCADE.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
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
	return nil
}

func mapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return storage.ErrAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

var _ storage.Store = (*Store)(nil)
