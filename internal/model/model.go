// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/dustin/go-humanize"
)

// PostType identifies what a post is about.
type PostType string

const (
	TypeRecipe      PostType = "recipe"
	TypeRestaurant  PostType = "restaurant"
	TypeFoodWalk    PostType = "foodWalk"
	TypeSightseeing PostType = "sightseeing"
)

// TypeAll is the "no type restriction" selector used by filters and plans.
const TypeAll PostType = "all"

// TypePurchase marks shopping reports sent from the create form. Only the
// "all" selector matches them.
const TypePurchase PostType = "purchase"

// Valid reports whether t is one of the four post types.
func (t PostType) Valid() bool {
	switch t {
	case TypeRecipe, TypeRestaurant, TypeFoodWalk, TypeSightseeing:
		return true
	}
	return false
}

// Restaurant facets.
type (
	Situation       string
	RestaurantGenre string
	Priority        string
	ShopPreference  string
)

// Recipe facets.
type (
	RecipeCategory   string
	RecipeGenre      string
	RecipePreference string
)

const (
	SituationDate   Situation = "date"
	SituationFamily Situation = "family"
	SituationSenior Situation = "senior"
	SituationLunch  Situation = "lunch"
	SituationDinner Situation = "dinner"

	GenreCafe    RestaurantGenre = "cafe"
	GenreKorean  RestaurantGenre = "korean"
	GenreChinese RestaurantGenre = "chinese"
	GenreRamen   RestaurantGenre = "ramen"

	PriorityChewyNoodles Priority = "chewyNoodles"
	PriorityRichFlavor   Priority = "richFlavor"
	PrioritySpicy        Priority = "spicy"

	ShopRelaxing    ShopPreference = "relaxing"
	ShopKidFriendly ShopPreference = "kidFriendly"
	ShopHawaii      ShopPreference = "hawaii"

	CategoryBreakfast RecipeCategory = "breakfast"
	CategoryLunch     RecipeCategory = "lunch"
	CategoryDinner    RecipeCategory = "dinner"
	CategorySnack     RecipeCategory = "snack"

	RecipeJapanese RecipeGenre = "japanese"
	RecipeWestern  RecipeGenre = "western"
	RecipeChinese  RecipeGenre = "chinese"
	RecipeItalian  RecipeGenre = "italian"

	PreferenceLemon            RecipePreference = "lemon"
	PreferenceSummerVegetables RecipePreference = "summerVegetables"
	PreferenceCurry            RecipePreference = "curry"
)

// LabeledValue is a label/value pair shown in report sections.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportDetails holds the free-form review sections of a post.
type ReportDetails struct {
	// Restaurant reviews.
	DishDetails []LabeledValue `json:"dishDetails,omitempty"`
	ProsPoints  []string       `json:"prosPoints,omitempty"`
	ConsPoints  []string       `json:"consPoints,omitempty"`
	// Recipes.
	Ingredients []LabeledValue `json:"ingredients,omitempty"`
	CookingTips []string       `json:"cookingTips,omitempty"`
	Difficulty  string         `json:"difficulty,omitempty"`
}

// Post is a user-generated content record.
// Which facet fields are populated depends on Type; nothing enforces it.
type Post struct {
	ID           string   `json:"id"`
	Type         PostType `json:"type"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Author       string   `json:"author"`
	AuthorAvatar string   `json:"authorAvatar"`
	Rating       float64  `json:"rating"` // 0.00 - 5.00
	IsExpert     bool     `json:"isExpert,omitempty"`
	ExpertLevel  int      `json:"expertLevel,omitempty"`

	Situation      []Situation       `json:"situation,omitempty"`
	Genre          []RestaurantGenre `json:"genre,omitempty"`
	Priority       []Priority        `json:"priority,omitempty"`
	ShopPreference []ShopPreference  `json:"shopPreference,omitempty"`

	Category         []RecipeCategory   `json:"category,omitempty"`
	RecipeGenre      []RecipeGenre      `json:"recipeGenre,omitempty"`
	RecipePreference []RecipePreference `json:"recipePreference,omitempty"`

	TimeMinutes int       `json:"timeMinutes"`
	Budget      int       `json:"budget"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	IsLiked     bool      `json:"isLiked,omitempty"`

	ReportDetails *ReportDetails `json:"reportDetails,omitempty"`
}

// Age renders CreatedAt relative to now, e.g. "3 days ago".
func (p Post) Age() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return humanize.Time(p.CreatedAt)
}

// FilterOptions are the search criteria. Empty facet lists do not restrict.
type FilterOptions struct {
	Type PostType `json:"type"`

	Situation      []Situation       `json:"situation"`
	Genre          []RestaurantGenre `json:"genre"`
	Priority       []Priority        `json:"priority"`
	ShopPreference []ShopPreference  `json:"shopPreference"`

	Category         []RecipeCategory   `json:"category"`
	RecipeGenre      []RecipeGenre      `json:"recipeGenre"`
	RecipePreference []RecipePreference `json:"recipePreference"`

	MaxTime     int    `json:"maxTime"`
	MaxBudget   int    `json:"maxBudget"`
	SearchQuery string `json:"searchQuery"`
	Location    string `json:"location"`
}

// MenuItem is a dish in a restaurant suggestion.
type MenuItem struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ShoppingItem is an ingredient in a recipe suggestion.
type ShoppingItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// BudgetSuggestion is a precomputed, non-personalized recommendation.
// Restaurant suggestions carry MenuItems, recipe suggestions ShoppingItems.
type BudgetSuggestion struct {
	ID            string         `json:"id"`
	Type          PostType       `json:"type"`
	Title         string         `json:"title"`
	TotalBudget   int            `json:"totalBudget"`
	MenuItems     []MenuItem     `json:"menuItems,omitempty"`
	ShoppingItems []ShoppingItem `json:"shoppingItems,omitempty"`
	ImageURL      string         `json:"imageUrl"`
	Location      string         `json:"location,omitempty"`
	Tips          string         `json:"tips"`
}

// OrderItem is one dish of a restaurant bundle.
type OrderItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// RestaurantOrder is a restaurant bundle produced by the planner.
type RestaurantOrder struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	ImageURL      string      `json:"imageUrl"`
	Items         []OrderItem `json:"items"`
	TotalCalories int         `json:"totalCalories"`
	TotalPrice    int         `json:"totalPrice"`
}

// Alternative is a substitute ingredient.
type Alternative struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Reason string `json:"reason"`
}

// IngredientItem is one line of a recipe shopping list.
type IngredientItem struct {
	Name         string        `json:"name"`
	Quantity     string        `json:"quantity"`
	Price        int           `json:"price"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// RecipeOrder is a recipe shopping bundle produced by the planner.
type RecipeOrder struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ImageURL      string           `json:"imageUrl"`
	Items         []IngredientItem `json:"items"`
	TotalCalories int              `json:"totalCalories"`
	TotalPrice    int              `json:"totalPrice"`
}

// Rating is a single user review of a post.
type Rating struct {
	ID          string    `json:"id"`
	PostID      string    `json:"postId,omitempty"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	GoodCount   int       `json:"goodCount"`
	BadCount    int       `json:"badCount"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Budget      int       `json:"budget,omitempty"`
	TimeMinutes int       `json:"timeMinutes,omitempty"`
	Texture     string    `json:"texture,omitempty"`
	Temperature string    `json:"temperature,omitempty"`
	GoodPoints  string    `json:"goodPoints,omitempty"`
	BadPoints   string    `json:"badPoints,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// Source is a food-blog feed whose entries are imported as recipe posts.
type Source struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	LastFetched time.Time `json:"lastFetched"`
	LastError   string    `json:"lastError,omitempty"`
	PostCount   int       `json:"postCount"`
}

// Settings key constants.
const (
	SettingPollingInterval = "polling_interval_minutes"
)
