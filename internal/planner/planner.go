// Package planner produces restaurant and recipe bundles for the budget
// planning screen.
package planner

import (
	"math"

	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/model"
)

// Input defaults and presets.
const (
	DefaultBudget      = 1500
	DefaultCalories    = 600
	DefaultPeopleCount = 1
)

var (
	BudgetPresets      = []int{500, 1000, 1500, 2000, 3000}
	CaloriePresets     = []int{400, 500, 600, 700, 800}
	PeopleCountPresets = []int{1, 2, 3, 4, 5}
	PreferenceOptions  = []string{"糖質オフ", "グルテンフリー", "高タンパク", "野菜中心", "赤身肉", "貧血予防"}
)

// Request is everything the planning screen collects. Only Type and
// Calories influence the result; the rest is recorded for display.
type Request struct {
	Query             string         `json:"query"`
	Type              model.PostType `json:"type"` // all, recipe or restaurant
	Budget            int            `json:"budget"`
	BudgetEnabled     bool           `json:"budgetEnabled"`
	Calories          int            `json:"calories"`
	CaloriesEnabled   bool           `json:"caloriesEnabled"`
	Preferences       []string       `json:"preferences"`
	CustomPreference  string         `json:"customPreference"`
	PreferenceEnabled bool           `json:"preferencesEnabled"`
	PeopleCount       int            `json:"peopleCount"`
	PeopleEnabled     bool           `json:"peopleCountEnabled"`
}

// DefaultRequest matches the planner's initial state.
func DefaultRequest() Request {
	return Request{
		Type:              model.TypeAll,
		Budget:            DefaultBudget,
		BudgetEnabled:     true,
		Calories:          DefaultCalories,
		CaloriesEnabled:   true,
		Preferences:       []string{},
		PreferenceEnabled: true,
		PeopleCount:       DefaultPeopleCount,
		PeopleEnabled:     true,
	}
}

// Plan is the output of one search.
type Plan struct {
	RestaurantOrders []model.RestaurantOrder `json:"restaurantOrders"`
	RecipeOrders     []model.RecipeOrder     `json:"recipeOrders"`
}

// Build returns fresh bundles for req. It is deterministic in
// (req.Type, req.Calories).
func Build(req Request) Plan {
	plan := Plan{
		RestaurantOrders: []model.RestaurantOrder{},
		RecipeOrders:     []model.RecipeOrder{},
	}
	if includes(req.Type, model.TypeRestaurant) {
		plan.RestaurantOrders = restaurantOrders(req.Calories)
	}
	if includes(req.Type, model.TypeRecipe) {
		plan.RecipeOrders = recipeOrders(req.Calories)
	}
	return plan
}

func includes(selected, t model.PostType) bool {
	return selected == "" || selected == model.TypeAll || selected == t
}

// scale returns floor(calories * ratio).
func scale(calories int, ratio float64) int {
	return int(math.Floor(float64(calories) * ratio))
}

func restaurantOrders(calories int) []model.RestaurantOrder {
	orders := []model.RestaurantOrder{
		{
			ID:          "1",
			Title:       "バランス重視セット",
			Description: "栄養バランスを考えた定番の組み合わせ",
			ImageURL:    "https://images.unsplash.com/photo-1707528903668-bf2ce55b2e79?w=1080",
			Items: []model.OrderItem{
				{Name: "豚骨ラーメン", Price: 900, ImageURL: "https://images.unsplash.com/photo-1707528903668-bf2ce55b2e79?w=1080"},
				{Name: "餃子（6個）", Price: 300, ImageURL: "https://images.unsplash.com/photo-1703080173985-936514c7c8bd?w=1080"},
				{Name: "ウーロン茶", Price: 150, ImageURL: "https://images.unsplash.com/photo-1644413579461-b6ac1611caa6?w=1080"},
			},
			TotalCalories: scale(calories, 0.9),
		},
		{
			ID:          "2",
			Title:       "ヘルシー軽めセット",
			Description: "カロリー控えめで満足感のある組み合わせ",
			ImageURL:    "https://images.unsplash.com/photo-1649531794884-b8bb1de72e68?w=1080",
			Items: []model.OrderItem{
				{Name: "サラダチキンプレート", Price: 780, ImageURL: "https://images.unsplash.com/photo-1663861623497-2151b2bb21fe?w=1080"},
				{Name: "ミネストローネスープ", Price: 320, ImageURL: "https://images.unsplash.com/photo-1603105037880-880cd4edfb0d?w=1080"},
				{Name: "野菜サラダ", Price: 280, ImageURL: "https://images.unsplash.com/photo-1677653805080-59c57727c84e?w=1080"},
			},
			TotalCalories: scale(calories, 0.7),
		},
		{
			ID:          "3",
			Title:       "ボリューム満点セット",
			Description: "しっかり食べたい方向けの満足コース",
			ImageURL:    "https://images.unsplash.com/photo-1745427023135-5250e409ae86?w=1080",
			Items: []model.OrderItem{
				{Name: "チーズハンバーグ定食", Price: 1080, ImageURL: "https://images.unsplash.com/photo-1745427023135-5250e409ae86?w=1080"},
				{Name: "から揚げ（3個）", Price: 380, ImageURL: "https://images.unsplash.com/photo-1705359573945-bcf2d0b70b0b?w=1080"},
				{Name: "アイスコーヒー", Price: 200, ImageURL: "https://images.unsplash.com/photo-1684439670717-b1147a7e7534?w=1080"},
			},
			TotalCalories: scale(calories, 1.1),
		},
	}
	for i := range orders {
		for _, it := range orders[i].Items {
			orders[i].TotalPrice += it.Price
		}
	}
	return orders
}

func recipeOrders(calories int) []model.RecipeOrder {
	orders := []model.RecipeOrder{
		{
			ID:          "1",
			Title:       "カルボナーラの買い出しリスト",
			Description: "本格的なカルボナーラを作るための材料",
			ImageURL:    "https://images.unsplash.com/photo-1588013273468-315fd88ea34c?w=1080",
			Items: []model.IngredientItem{
				{Name: "スパゲッティ", Quantity: "200g", Price: 150, Alternatives: []model.Alternative{
					{Name: "生パスタ", Price: 200, Reason: "茹で時間が半分、食感がもちもち"},
				}},
				{Name: "ベーコン", Quantity: "80g", Price: 180, Alternatives: []model.Alternative{
					{Name: "パンチェッタ", Price: 250, Reason: "本格的なイタリア風味"},
				}},
				{Name: "卵", Quantity: "2個", Price: 80},
				{Name: "粉チーズ", Quantity: "30g", Price: 120, Alternatives: []model.Alternative{
					{Name: "パルメザンチーズ", Price: 350, Reason: "風味が格段に良い"},
				}},
				{Name: "にんにく", Quantity: "1片", Price: 50},
			},
			TotalCalories: scale(calories, 0.85),
		},
		{
			ID:          "2",
			Title:       "ヘルシーサラダボウル",
			Description: "栄養満点のサラダボウルの材料",
			ImageURL:    "https://images.unsplash.com/photo-1578657084274-03b9d153b0dc?w=1080",
			Items: []model.IngredientItem{
				{Name: "サラダチキン", Quantity: "1パック", Price: 200, Alternatives: []model.Alternative{
					{Name: "蒸し鶏", Price: 180, Reason: "より自然な味わい、添加物少ない"},
					{Name: "ツナ缶", Price: 120, Reason: "コスト半分、保存がきく"},
				}},
				{Name: "アボカド", Quantity: "1個", Price: 180, Alternatives: []model.Alternative{
					{Name: "きゅうり", Price: 45, Reason: "価格1/4、食感は類似"},
				}},
				{Name: "ミニトマト", Quantity: "1パック", Price: 120},
				{Name: "レタス", Quantity: "1/2玉", Price: 80, Alternatives: []model.Alternative{
					{Name: "カット野菜", Price: 150, Reason: "下処理不要で時短"},
				}},
				{Name: "オリーブオイル", Quantity: "適量", Price: 30},
			},
			TotalCalories: scale(calories, 0.65),
		},
		{
			ID:          "3",
			Title:       "チキンカレーの買い出しリスト",
			Description: "スパイスの効いた本格カレーの材料",
			ImageURL:    "https://images.unsplash.com/photo-1707448829764-9474458021ed?w=1080",
			Items: []model.IngredientItem{
				{Name: "鶏もも肉", Quantity: "300g", Price: 420, Alternatives: []model.Alternative{
					{Name: "鶏むね肉", Price: 280, Reason: "カロリー30%減、高タンパク"},
					{Name: "サラダチキン", Price: 300, Reason: "加熱済みで時短"},
				}},
				{Name: "玉ねぎ", Quantity: "2個", Price: 100},
				{Name: "じゃがいも", Quantity: "2個", Price: 80},
				{Name: "にんじん", Quantity: "1本", Price: 60},
				{Name: "カレールー", Quantity: "1/2箱", Price: 120, Alternatives: []model.Alternative{
					{Name: "カレー粉＋トマト缶", Price: 200, Reason: "添加物なしで本格的"},
				}},
			},
			TotalCalories: scale(calories, 1.0),
		},
	}
	for i := range orders {
		for _, it := range orders[i].Items {
			orders[i].TotalPrice += it.Price
		}
	}
	return orders
}

// Suggestions returns the static budget suggestions of type t, or all of
// them when t is empty or "all".
func Suggestions(t model.PostType) []model.BudgetSuggestion {
	out := []model.BudgetSuggestion{}
	for _, s := range catalog.BudgetSuggestions() {
		if includes(t, s.Type) {
			out = append(out, s)
		}
	}
	return out
}
