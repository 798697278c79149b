package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// Option is a selectable facet value with its display label.
type Option[T any] struct {
	Value T      `json:"value"`
	Label string `json:"label"`
}

var (
	SituationOptions = []Option[model.Situation]{
		{model.SituationDate, "デート"},
		{model.SituationFamily, "子連れ"},
		{model.SituationSenior, "シニア"},
		{model.SituationLunch, "ランチ"},
		{model.SituationDinner, "ディナー"},
	}
	GenreOptions = []Option[model.RestaurantGenre]{
		{model.GenreCafe, "カフェ"},
		{model.GenreKorean, "韓国"},
		{model.GenreChinese, "中華"},
		{model.GenreRamen, "ラーメン"},
	}
	PriorityOptions = []Option[model.Priority]{
		{model.PriorityChewyNoodles, "麺もちもち"},
		{model.PriorityRichFlavor, "味が濃い"},
		{model.PrioritySpicy, "スパイシー"},
	}
	ShopPreferenceOptions = []Option[model.ShopPreference]{
		{model.ShopRelaxing, "ゆったり"},
		{model.ShopKidFriendly, "子供向け"},
		{model.ShopHawaii, "ハワイ"},
	}
	CategoryOptions = []Option[model.RecipeCategory]{
		{model.CategoryBreakfast, "朝ごはん"},
		{model.CategoryLunch, "昼ごはん"},
		{model.CategoryDinner, "夜ごはん"},
		{model.CategorySnack, "おやつ"},
	}
	RecipeGenreOptions = []Option[model.RecipeGenre]{
		{model.RecipeJapanese, "和食"},
		{model.RecipeWestern, "洋食"},
		{model.RecipeChinese, "中華"},
		{model.RecipeItalian, "イタリアン"},
	}
	RecipePreferenceOptions = []Option[model.RecipePreference]{
		{model.PreferenceLemon, "レモン"},
		{model.PreferenceSummerVegetables, "夏野菜"},
		{model.PreferenceCurry, "カレー"},
	}
	LocationOptions = []Option[string]{
		{"丸の内", "丸の内"},
		{"麻布", "麻布"},
		{"ソラマチ", "ソラマチ"},
	}
)

// ParseQuery builds FilterOptions from URL query parameters. Facet
// parameters may repeat or hold comma-separated values; unknown or
// malformed numeric values keep the defaults. type accepts the post types
// and "purchase"; anything else selects all posts.
//
//	?type=recipe&category=dinner,lunch&maxTime=30&q=カレー
func ParseQuery(v url.Values) model.FilterOptions {
	opts := DefaultOptions()
	if t := model.PostType(v.Get("type")); t.Valid() || t == model.TypePurchase {
		opts.Type = t
	}
	opts.Situation = values[model.Situation](v, "situation")
	opts.Genre = values[model.RestaurantGenre](v, "genre")
	opts.Priority = values[model.Priority](v, "priority")
	opts.ShopPreference = values[model.ShopPreference](v, "shopPreference")
	opts.Category = values[model.RecipeCategory](v, "category")
	opts.RecipeGenre = values[model.RecipeGenre](v, "recipeGenre")
	opts.RecipePreference = values[model.RecipePreference](v, "recipePreference")
	if n, err := strconv.Atoi(v.Get("maxTime")); err == nil {
		opts.MaxTime = n
	}
	if n, err := strconv.Atoi(v.Get("maxBudget")); err == nil {
		opts.MaxBudget = n
	}
	opts.SearchQuery = v.Get("q")
	opts.Location = v.Get("location")
	return opts
}

func values[T ~string](v url.Values, key string) []T {
	out := []T{}
	for _, raw := range v[key] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, T(s))
			}
		}
	}
	return out
}
