// Package generator fills a users store with demo users, posts and
// comments for local development.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/louisbranch/userboard/internal/platform/id"
	"github.com/louisbranch/userboard/internal/services/users/storage"
)

// Config holds configuration for the generator.
type Config struct {
	Users int
	Seed  int64
	// UnnamedEvery leaves every nth user without a name (0 disables).
	UnnamedEvery int
	MaxPosts     int
	MaxComments  int
	Verbose      bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Users:        12,
		UnnamedEvery: 4,
		MaxPosts:     4,
		MaxComments:  6,
	}
}

// Writer is the part of the users store the generator writes to.
type Writer interface {
	PutUser(ctx context.Context, user storage.User) error
	PutPost(ctx context.Context, post storage.Post) error
	PutComment(ctx context.Context, comment storage.Comment) error
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Posts    int
	Comments int
}

// Generator orchestrates demo data generation.
type Generator struct {
	config       Config
	rng          *rand.Rand
	store        Writer
	nameRegistry *nameRegistry
	newID        func() (string, error)
	now          func() time.Time
	out          io.Writer
}

// NewSeededRNG returns a generator RNG. Seed 0 picks a time-based seed,
// which is reported on out when verbose so a run can be replayed.
func NewSeededRNG(seed int64, verbose bool, out io.Writer) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if verbose && out != nil {
			fmt.Fprintf(out, "Using random seed: %d\n", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}

// New creates a Generator writing to store. out receives verbose progress
// and may be nil.
func New(store Writer, cfg Config, out io.Writer) (*Generator, error) {
	if store == nil {
		return nil, errors.New("seed store is required")
	}
	if cfg.Users < 0 {
		return nil, fmt.Errorf("user count must be >= 0, got %d", cfg.Users)
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		config:       cfg,
		rng:          NewSeededRNG(cfg.Seed, cfg.Verbose, out),
		store:        store,
		nameRegistry: newNameRegistry(),
		newID:        id.NewID,
		now:          time.Now,
		out:          out,
	}, nil
}

// Run creates the configured users, then a random number of posts per
// user, then comments spread across every post created so far.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	start := g.now().UTC().Add(-time.Duration(g.config.Users) * time.Minute)
	var posts []storage.Post

	for i := 0; i < g.config.Users; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		createdAt := start.Add(time.Duration(i) * time.Minute)
		user, err := g.createUser(ctx, i, createdAt)
		if err != nil {
			return summary, fmt.Errorf("create user %d: %w", i+1, err)
		}
		summary.Users++
		if g.config.Verbose {
			fmt.Fprintf(g.out, "  Created user: %s (%s)\n", g.displayName(user), user.ID)
		}

		for p := g.randomRange(0, g.config.MaxPosts); p > 0; p-- {
			post, err := g.createPost(ctx, user, createdAt)
			if err != nil {
				return summary, fmt.Errorf("create post for %s: %w", user.ID, err)
			}
			posts = append(posts, post)
			summary.Posts++
		}

		if len(posts) == 0 {
			continue
		}
		for c := g.randomRange(0, g.config.MaxComments); c > 0; c-- {
			post := posts[g.rng.Intn(len(posts))]
			if err := g.createComment(ctx, user, post, createdAt); err != nil {
				return summary, fmt.Errorf("create comment for %s: %w", user.ID, err)
			}
			summary.Comments++
		}
	}

	if g.config.Verbose {
		fmt.Fprintf(g.out, "Generation complete: %d user(s), %d post(s), %d comment(s)\n",
			summary.Users, summary.Posts, summary.Comments)
	}
	return summary, nil
}

func (g *Generator) createUser(ctx context.Context, index int, createdAt time.Time) (storage.User, error) {
	userID, err := g.newID()
	if err != nil {
		return storage.User{}, err
	}
	name := ""
	if !g.unnamed(index) {
		name = g.uniqueDisplayName(g.pickName())
	}
	emailBase := name
	if emailBase == "" {
		emailBase = fmt.Sprintf("anonymous %d", index+1)
	}
	user := storage.User{
		ID:        userID,
		Name:      name,
		Email:     g.seedPrimaryEmail(emailBase),
		CreatedAt: createdAt,
	}
	return user, g.store.PutUser(ctx, user)
}

func (g *Generator) createPost(ctx context.Context, user storage.User, after time.Time) (storage.Post, error) {
	postID, err := g.newID()
	if err != nil {
		return storage.Post{}, err
	}
	post := storage.Post{
		ID:        postID,
		UserID:    user.ID,
		Title:     postTitles[g.rng.Intn(len(postTitles))],
		CreatedAt: after.Add(time.Duration(g.rng.Intn(50)+1) * time.Second),
	}
	return post, g.store.PutPost(ctx, post)
}

func (g *Generator) createComment(ctx context.Context, user storage.User, post storage.Post, after time.Time) error {
	commentID, err := g.newID()
	if err != nil {
		return err
	}
	return g.store.PutComment(ctx, storage.Comment{
		ID:        commentID,
		UserID:    user.ID,
		PostID:    post.ID,
		Body:      commentBodies[g.rng.Intn(len(commentBodies))],
		CreatedAt: after.Add(time.Duration(g.rng.Intn(50)+1) * time.Second),
	})
}

func (g *Generator) unnamed(index int) bool {
	every := g.config.UnnamedEvery
	return every > 0 && (index+1)%every == 0
}

func (g *Generator) displayName(user storage.User) string {
	if user.Name == "" {
		return "<unnamed>"
	}
	return user.Name
}

// randomRange returns a value in [min, max], or min when min >= max.
func (g *Generator) randomRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}
