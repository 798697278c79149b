// Package saved keeps the session's bookmarked posts.
package saved

import (
	"sync"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// Set is an insertion-ordered list of posts, unique by ID.
// It is safe for concurrent use.
type Set struct {
	mu    sync.Mutex
	posts []model.Post
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Toggle removes the post if its ID is present, otherwise appends it.
// Returns true when the post is saved afterwards.
func (s *Set) Toggle(p model.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.posts {
		if existing.ID == p.ID {
			next := make([]model.Post, 0, len(s.posts)-1)
			next = append(next, s.posts[:i]...)
			s.posts = append(next, s.posts[i+1:]...)
			return false
		}
	}
	s.posts = append(s.posts, p)
	return true
}

// Contains reports whether a post with id is saved.
func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// List returns a copy of the saved posts in the order they were saved.
func (s *Set) List() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Len returns the number of saved posts.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}
