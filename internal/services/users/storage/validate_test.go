package storage

import (
	"testing"
	"time"
)

func TestNormalizeUser(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	tests := []struct {
		name    string
		input   User
		wantErr bool
		want    User
	}{
		{name: "missing id", input: User{Email: "a@example.com"}, wantErr: true},
		{name: "missing email", input: User{ID: "u1"}, wantErr: true},
		{
			name:  "trims and defaults created at",
			input: User{ID: " u1 ", Name: "  Ada ", Email: " ada@example.com "},
			want:  User{ID: "u1", Name: "Ada", Email: "ada@example.com", CreatedAt: fixed},
		},
		{
			name:  "keeps name empty",
			input: User{ID: "u2", Email: "anon@example.com"},
			want:  User{ID: "u2", Email: "anon@example.com", CreatedAt: fixed},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeUser(tc.input, now)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize user: %v", err)
			}
			if got != tc.want {
				t.Fatalf("user = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNormalizeCommentRequiresPost(t *testing.T) {
	t.Parallel()

	if _, err := NormalizeComment(Comment{ID: "c1", UserID: "u1"}, nil); err == nil {
		t.Fatal("expected post id error")
	}
}

func TestNormalizePostKeepsCreatedAt(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	got, err := NormalizePost(Post{ID: "p1", UserID: "u1", CreatedAt: created}, nil)
	if err != nil {
		t.Fatalf("normalize post: %v", err)
	}
	if !got.CreatedAt.Equal(created) || got.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at = %v, want %v in UTC", got.CreatedAt, created)
	}
}
