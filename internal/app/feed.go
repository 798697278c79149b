package app

import (
	"context"

	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/search"
)

// Feed is the post timeline with local like state.
type Feed struct {
	posts []model.Post
}

// NewFeed shows initial until Load finds something better.
func NewFeed(initial []model.Post) *Feed {
	return &Feed{posts: append([]model.Post{}, initial...)}
}

// Load replaces the timeline when the backend returns any posts.
func (f *Feed) Load(ctx context.Context, lister search.PostLister) {
	fetched := lister.GetPosts(ctx)
	if ctx.Err() != nil || len(fetched) == 0 {
		return
	}
	f.posts = fetched
}

// Posts returns the timeline.
func (f *Feed) Posts() []model.Post { return f.posts }

// ToggleLike flips the like on post id and adjusts its count. It reports
// the new like state; unknown ids report false.
func (f *Feed) ToggleLike(id string) bool {
	for i := range f.posts {
		p := &f.posts[i]
		if p.ID != id {
			continue
		}
		if p.IsLiked {
			p.Likes--
		} else {
			p.Likes++
		}
		p.IsLiked = !p.IsLiked
		return p.IsLiked
	}
	return false
}
