// Package search implements multi-criteria post filtering.
package search

import (
	"strings"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// Default ceilings.
const (
	DefaultMaxTime   = 120
	DefaultMaxBudget = 10000
)

// DefaultOptions returns criteria that restrict nothing but the default ceilings.
func DefaultOptions() model.FilterOptions {
	return model.FilterOptions{
		Type:             model.TypeAll,
		Situation:        []model.Situation{},
		Genre:            []model.RestaurantGenre{},
		Priority:         []model.Priority{},
		ShopPreference:   []model.ShopPreference{},
		Category:         []model.RecipeCategory{},
		RecipeGenre:      []model.RecipeGenre{},
		RecipePreference: []model.RecipePreference{},
		MaxTime:          DefaultMaxTime,
		MaxBudget:        DefaultMaxBudget,
	}
}

// Filter narrows posts by opts. The result keeps the input order and is
// never nil. posts is not modified.
//
// Each selected facet list must intersect the post's list for that facet.
// The time ceiling only applies when filtering recipes; the budget ceiling
// always applies. Location is carried on opts but never narrows the result.
func Filter(posts []model.Post, opts model.FilterOptions) []model.Post {
	out := make([]model.Post, 0, len(posts))
	query := strings.ToLower(opts.SearchQuery)

	for _, p := range posts {
		if opts.Type != "" && opts.Type != model.TypeAll && p.Type != opts.Type {
			continue
		}
		if !intersects(opts.Situation, p.Situation) ||
			!intersects(opts.Genre, p.Genre) ||
			!intersects(opts.Priority, p.Priority) ||
			!intersects(opts.ShopPreference, p.ShopPreference) ||
			!intersects(opts.Category, p.Category) ||
			!intersects(opts.RecipeGenre, p.RecipeGenre) ||
			!intersects(opts.RecipePreference, p.RecipePreference) {
			continue
		}
		if opts.Type == model.TypeRecipe && p.TimeMinutes > opts.MaxTime {
			continue
		}
		if p.Budget > opts.MaxBudget {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// intersects reports whether have shares a value with want.
// An empty want always matches.
func intersects[T comparable](want, have []T) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// matchesQuery expects query already lowercased.
func matchesQuery(p model.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Toggle removes v from list if present, otherwise appends it.
// It always returns a new slice.
func Toggle[T comparable](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	found := false
	for _, x := range list {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
