// Package app holds the headless view state of the FoodMood screens.
package app

import (
	"context"

	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/saved"
)

// Tab is a bottom-navigation destination.
type Tab string

const (
	TabBudget  Tab = "budget"
	TabSearch  Tab = "search"
	TabSaved   Tab = "saved"
	TabProfile Tab = "profile"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabBudget, TabSearch, TabSaved, TabProfile:
		return true
	}
	return false
}

// Screen is what the session currently shows.
type Screen string

const (
	ScreenCreatePost       Screen = "createPost"
	ScreenRestaurantDetail Screen = "restaurantDetail"
	ScreenRecipeDetail     Screen = "recipeDetail"
	ScreenBudget           Screen = Screen(TabBudget)
	ScreenSearch           Screen = Screen(TabSearch)
	ScreenSaved            Screen = Screen(TabSaved)
	ScreenProfile          Screen = Screen(TabProfile)
)

// Messages shown after submitting a post.
const (
	SubmitSucceeded = "投稿をバックエンドに送信しました"
	SubmitFailed    = "投稿に失敗しました（ネットワークの問題など）"
)

// PostCreator sends new posts to the backend. It returns nil on failure.
type PostCreator interface {
	CreatePost(ctx context.Context, payload any) any
}

// SubmitResult is the outcome of SubmitPost.
type SubmitResult struct {
	OK       bool
	Message  string
	Response any
}

// Session is the top-level app state. It is not safe for concurrent use.
type Session struct {
	tab         Tab
	restaurant  *model.Post
	recipe      *model.Post
	creating    bool
	budgetQuery string
	saved       *saved.Set
	creator     PostCreator
}

// NewSession starts on the budget tab with nothing selected.
func NewSession(creator PostCreator) *Session {
	return &Session{
		tab:     TabBudget,
		saved:   saved.New(),
		creator: creator,
	}
}

// Tab returns the active tab.
func (s *Session) Tab() Tab { return s.tab }

// SetTab switches tabs. Unknown tabs are ignored.
func (s *Session) SetTab(t Tab) {
	if t.Valid() {
		s.tab = t
	}
}

// Screen resolves the visible screen: the create form first, then an open
// restaurant, then an open recipe, then the active tab.
func (s *Session) Screen() Screen {
	switch {
	case s.creating:
		return ScreenCreatePost
	case s.restaurant != nil:
		return ScreenRestaurantDetail
	case s.recipe != nil:
		return ScreenRecipeDetail
	}
	return Screen(s.tab)
}

// OpenPost opens the detail screen for restaurant and recipe posts.
// Other post types have no detail screen.
func (s *Session) OpenPost(p model.Post) {
	switch p.Type {
	case model.TypeRestaurant:
		s.restaurant = &p
	case model.TypeRecipe:
		s.recipe = &p
	}
}

// SelectedRestaurant returns the open restaurant, if any.
func (s *Session) SelectedRestaurant() *model.Post { return s.restaurant }

// SelectedRecipe returns the open recipe, if any.
func (s *Session) SelectedRecipe() *model.Post { return s.recipe }

func (s *Session) CloseRestaurant() { s.restaurant = nil }

func (s *Session) CloseRecipe() { s.recipe = nil }

// ToggleSave adds or removes p from the saved set and reports whether it
// is saved afterwards.
func (s *Session) ToggleSave(p model.Post) bool { return s.saved.Toggle(p) }

func (s *Session) IsSaved(id string) bool { return s.saved.Contains(id) }

// Saved returns the saved posts in the order they were saved.
func (s *Session) Saved() []model.Post { return s.saved.List() }

// EditToPlan hands a post title to the planner and shows the budget tab.
func (s *Session) EditToPlan(title string) {
	s.budgetQuery = title
	s.tab = TabBudget
}

// BudgetQuery is the planner's prefilled search text.
func (s *Session) BudgetQuery() string { return s.budgetQuery }

func (s *Session) OpenCreatePost() { s.creating = true }

func (s *Session) CloseCreatePost() { s.creating = false }

// SubmitPost sends payload through the creator and closes the form.
func (s *Session) SubmitPost(ctx context.Context, payload any) SubmitResult {
	var res any
	if s.creator != nil {
		res = s.creator.CreatePost(ctx, payload)
	}
	s.creating = false
	if res == nil {
		return SubmitResult{Message: SubmitFailed}
	}
	return SubmitResult{OK: true, Message: SubmitSucceeded, Response: res}
}
