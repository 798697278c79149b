package app

import (
	"context"

	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/search"
)

// Grid size and expert status thresholds.
const (
	GridSize       = 9
	ExpertMinPosts = 20
	PostsPerLevel  = 10
	MaxExpertLevel = 10
)

// Stats are the counters in the profile header.
type Stats struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// Profile is the user page: header stats and a grid of recent posts.
type Profile struct {
	Name   string
	Stats  Stats
	posts  []model.Post
	filter model.PostType
}

// NewProfile keeps the first GridSize posts for the grid.
func NewProfile(name string, stats Stats, posts []model.Post) *Profile {
	p := &Profile{Name: name, Stats: stats, filter: model.TypeAll}
	p.setPosts(posts)
	return p
}

func (p *Profile) setPosts(posts []model.Post) {
	if len(posts) > GridSize {
		posts = posts[:GridSize]
	}
	p.posts = append([]model.Post{}, posts...)
}

// Load refreshes the grid from the backend when it returns any posts.
func (p *Profile) Load(ctx context.Context, lister search.PostLister) {
	fetched := lister.GetPosts(ctx)
	if ctx.Err() != nil || len(fetched) == 0 {
		return
	}
	p.setPosts(fetched)
}

// SetFilter accepts all, recipe or restaurant; anything else is ignored.
func (p *Profile) SetFilter(t model.PostType) {
	switch t {
	case model.TypeAll, model.TypeRecipe, model.TypeRestaurant:
		p.filter = t
	}
}

// Grid returns the grid posts matching the filter.
func (p *Profile) Grid() []model.Post {
	out := []model.Post{}
	for _, post := range p.posts {
		if p.filter == model.TypeAll || post.Type == p.filter {
			out = append(out, post)
		}
	}
	return out
}

// IsExpert reports the 通 badge.
func (p *Profile) IsExpert() bool { return p.Stats.Posts >= ExpertMinPosts }

// ExpertLevel is 1 at 20 posts, one more per 10 posts, capped at 10.
// Non-experts are level 1.
func (p *Profile) ExpertLevel() int {
	if !p.IsExpert() {
		return 1
	}
	return min((p.Stats.Posts-ExpertMinPosts)/PostsPerLevel+1, MaxExpertLevel)
}
