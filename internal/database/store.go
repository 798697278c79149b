// Package database provides storage backends for the posts service.
package database

import (
	"fmt"
	"time"

	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/model"
)

// MinPollingIntervalMinutes is the floor applied to the stored polling interval.
const MinPollingIntervalMinutes = 15

// Store defines the interface for database operations.
// Both SQLite and PostgreSQL implementations satisfy this interface.
type Store interface {
	Close() error

	// DatabaseType returns the name of the database backend ("SQLite" or "PostgreSQL").
	DatabaseType() string

	// SupportsHighConcurrency returns true if the database can handle
	// many concurrent write operations (e.g., PostgreSQL).
	// SQLite returns false due to write locking limitations.
	SupportsHighConcurrency() bool

	// Post operations. GetPost returns sql.ErrNoRows for unknown ids.
	ListPosts() ([]model.Post, error)
	GetPost(id string) (*model.Post, error)
	CreatePost(p *model.Post) error
	CountPosts() (int, error)

	// Rating operations
	ListRatings(postID string) ([]model.Rating, error)
	AddRating(r *model.Rating) error

	// Source operations
	GetSources() ([]model.Source, error)
	GetOrCreateSource(title, url string) (int64, bool, error)
	GetSourceByID(sourceID int64) (*model.Source, error)
	UpdateSourceLastFetched(sourceID int64, t time.Time) error
	UpdateSourceTitle(sourceID int64, title string) error
	UpdateSourceError(sourceID int64, errMsg string) error
	DeleteSource(sourceID int64) error
	// AddImportedPost stores p unless the source already has guid.
	// It reports whether the post was new.
	AddImportedPost(sourceID int64, guid string, p *model.Post) (bool, error)

	// Settings operations
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
	GetPollingInterval() (int, error)
}

// Seed fills an empty store with the catalog posts and their ratings.
// It does nothing when the store already holds posts.
func Seed(s Store) error {
	n, err := s.CountPosts()
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, p := range catalog.Posts() {
		p := p
		if err := s.CreatePost(&p); err != nil {
			return fmt.Errorf("seed post %s: %w", p.ID, err)
		}
	}
	// The sample ratings all belong to the first post.
	for _, r := range catalog.Ratings() {
		r := r
		if r.PostID == "" {
			r.PostID = "1"
		}
		if err := s.AddRating(&r); err != nil {
			return fmt.Errorf("seed rating %s: %w", r.ID, err)
		}
	}
	return nil
}
