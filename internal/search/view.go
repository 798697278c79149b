package search

import (
	"context"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// PostLister is the part of the API client the view needs.
type PostLister interface {
	GetPosts(ctx context.Context) []model.Post
}

// View is the state behind the search screen. Apply always re-filters the
// fixed candidate list; a successful Load only replaces what is shown.
// A View is not safe for concurrent use.
type View struct {
	candidates []model.Post
	results    []model.Post
	Filters    model.FilterOptions
}

// NewView starts with every candidate shown and default filters.
func NewView(candidates []model.Post) *View {
	return &View{
		candidates: candidates,
		results:    candidates,
		Filters:    DefaultOptions(),
	}
}

// Load fetches posts once and shows them if any came back.
// An empty or failed fetch leaves the current results untouched.
func (v *View) Load(ctx context.Context, client PostLister) {
	fetched := client.GetPosts(ctx)
	if ctx.Err() != nil {
		return
	}
	if len(fetched) > 0 {
		v.results = fetched
	}
}

// Apply re-filters the candidates with the current filters.
func (v *View) Apply() []model.Post {
	v.results = Filter(v.candidates, v.Filters)
	return v.results
}

// Results returns the posts currently shown.
func (v *View) Results() []model.Post {
	return v.results
}

// Empty reports whether the "no results" message should be shown.
func (v *View) Empty() bool {
	return len(v.results) == 0
}

func (v *View) SetType(t model.PostType) { v.Filters.Type = t }
func (v *View) SetQuery(q string) { v.Filters.SearchQuery = q }
func (v *View) SetLocation(loc string) { v.Filters.Location = loc }
func (v *View) SetMaxTime(minutes int) { v.Filters.MaxTime = minutes }
func (v *View) SetMaxBudget(budget int) { v.Filters.MaxBudget = budget }

func (v *View) ToggleSituation(s model.Situation) {
	v.Filters.Situation = Toggle(v.Filters.Situation, s)
}

func (v *View) ToggleGenre(g model.RestaurantGenre) {
	v.Filters.Genre = Toggle(v.Filters.Genre, g)
}

func (v *View) TogglePriority(p model.Priority) {
	v.Filters.Priority = Toggle(v.Filters.Priority, p)
}

func (v *View) ToggleShopPreference(p model.ShopPreference) {
	v.Filters.ShopPreference = Toggle(v.Filters.ShopPreference, p)
}

func (v *View) ToggleCategory(c model.RecipeCategory) {
	v.Filters.Category = Toggle(v.Filters.Category, c)
}

func (v *View) ToggleRecipeGenre(g model.RecipeGenre) {
	v.Filters.RecipeGenre = Toggle(v.Filters.RecipeGenre, g)
}

func (v *View) ToggleRecipePreference(p model.RecipePreference) {
	v.Filters.RecipePreference = Toggle(v.Filters.RecipePreference, p)
}
