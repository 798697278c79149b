package search

import (
	"context"
	"net/url"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(posts []model.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_DefaultsKeepEverythingInOrder(t *testing.T) {
	posts := catalog.Posts()
	require.Equal(t, ids(posts), ids(Filter(posts, DefaultOptions())))
}

func TestFilter_Criteria(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *model.FilterOptions)
		want   []string
	}{
		{
			name:   "type restaurant",
			modify: func(o *model.FilterOptions) { o.Type = model.TypeRestaurant },
			want:   []string{"1", "2", "3", "4"},
		},
		{
			name:   "situation intersects",
			modify: func(o *model.FilterOptions) { o.Situation = []model.Situation{model.SituationDate, model.SituationFamily} },
			want:   []string{"2", "3"},
		},
		{
			name:   "genre",
			modify: func(o *model.FilterOptions) { o.Genre = []model.RestaurantGenre{model.GenreRamen} },
			want:   []string{"1"},
		},
		{
			name: "priority and shop preference both apply",
			modify: func(o *model.FilterOptions) {
				o.Priority = []model.Priority{model.PrioritySpicy}
				o.ShopPreference = []model.ShopPreference{model.ShopKidFriendly}
			},
			want: []string{"3"},
		},
		{
			name:   "recipe category",
			modify: func(o *model.FilterOptions) { o.Category = []model.RecipeCategory{model.CategoryDinner} },
			want:   []string{"5", "7", "8"},
		},
		{
			name:   "recipe preference",
			modify: func(o *model.FilterOptions) { o.RecipePreference = []model.RecipePreference{model.PreferenceCurry} },
			want:   []string{"7"},
		},
		{
			name: "time ceiling applies to recipes",
			modify: func(o *model.FilterOptions) {
				o.Type = model.TypeRecipe
				o.MaxTime = 20
			},
			want: []string{"5", "6"},
		},
		{
			name:   "time ceiling ignored for all types",
			modify: func(o *model.FilterOptions) { o.MaxTime = 5 },
			want:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
		{
			name:   "budget ceiling always applies",
			modify: func(o *model.FilterOptions) { o.MaxBudget = 700 },
			want:   []string{"5", "6", "8"},
		},
		{
			name:   "query matches tags case-insensitively",
			modify: func(o *model.FilterOptions) { o.SearchQuery = "WI-FI" },
			want:   []string{"2"},
		},
		{
			name:   "query matches title and description",
			modify: func(o *model.FilterOptions) { o.SearchQuery = "麻婆" },
			want:   []string{"4", "8"},
		},
		{
			name:   "location does not narrow",
			modify: func(o *model.FilterOptions) { o.Location = "ソラマチ" },
			want:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		},
		{
			name:   "no match",
			modify: func(o *model.FilterOptions) { o.SearchQuery = "寿司" },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			got := Filter(catalog.Posts(), opts)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_LocationKeepsResult(t *testing.T) {
	opts := DefaultOptions()
	opts.Type = model.TypeRestaurant
	want := ids(Filter(catalog.Posts(), opts))

	opts.Location = "ソラマチ"
	assert.Equal(t, want, ids(Filter(catalog.Posts(), opts)))
	opts.Location = "存在しない場所"
	assert.Equal(t, want, ids(Filter(catalog.Posts(), opts)))
}

func TestFilter_IsPure(t *testing.T) {
	posts := catalog.Posts()
	before := ids(posts)
	opts := DefaultOptions()
	opts.Type = model.TypeRecipe
	opts.SearchQuery = "カレー"

	first := Filter(posts, opts)
	second := Filter(posts, opts)
	require.Equal(t, first, second)
	require.Equal(t, before, ids(posts), "input slice was modified")
}

func TestToggle(t *testing.T) {
	list := []string{"a", "b"}
	added := Toggle(list, "c")
	require.Equal(t, []string{"a", "b", "c"}, added)
	removed := Toggle(added, "a")
	require.Equal(t, []string{"b", "c"}, removed)
	require.Equal(t, []string{"a", "b"}, list)
}

func TestParseQuery(t *testing.T) {
	v := url.Values{}
	v.Set("type", "recipe")
	v.Add("category", "dinner,lunch")
	v.Add("category", "snack")
	v.Set("maxTime", "30")
	v.Set("maxBudget", "oops")
	v.Set("q", "カレー")
	v.Set("location", "丸の内")

	opts := ParseQuery(v)
	assert.Equal(t, model.TypeRecipe, opts.Type)
	assert.Equal(t, []model.RecipeCategory{"dinner", "lunch", "snack"}, opts.Category)
	assert.Equal(t, 30, opts.MaxTime)
	assert.Equal(t, DefaultMaxBudget, opts.MaxBudget)
	assert.Equal(t, "カレー", opts.SearchQuery)
	assert.Equal(t, "丸の内", opts.Location)

	assert.Equal(t, model.TypeAll, ParseQuery(url.Values{"type": {"pizza"}}).Type)
	assert.Equal(t, model.TypePurchase, ParseQuery(url.Values{"type": {"purchase"}}).Type)
}

type fakeLister struct{ posts []model.Post }

func (f fakeLister) GetPosts(ctx context.Context) []model.Post { return f.posts }

func TestView_LoadAndApply(t *testing.T) {
	v := NewView(catalog.Posts())
	require.Len(t, v.Results(), 10)

	v.Load(context.Background(), fakeLister{})
	require.Len(t, v.Results(), 10, "empty fetch must keep current results")

	remote := []model.Post{{ID: "remote", Type: model.TypeRecipe, Title: "remote"}}
	v.Load(context.Background(), fakeLister{posts: remote})
	require.Equal(t, []string{"remote"}, ids(v.Results()))

	// Apply works on the fixed candidates, not the fetched list.
	v.SetType(model.TypeRecipe)
	v.ToggleRecipeGenre(model.RecipeChinese)
	require.Equal(t, []string{"8"}, ids(v.Apply()))

	v.ToggleRecipeGenre(model.RecipeChinese)
	v.SetQuery("存在しない")
	v.Apply()
	assert.True(t, v.Empty())
}
