package planner

import (
	"testing"

	"github.com/bryan-buckman/foodmood/internal/model"
)

func TestBuild_ScalesCalories(t *testing.T) {
	req := DefaultRequest()
	req.Calories = 600
	plan := Build(req)

	if len(plan.RestaurantOrders) != 3 || len(plan.RecipeOrders) != 3 {
		t.Fatalf("expected 3+3 bundles, got %d+%d", len(plan.RestaurantOrders), len(plan.RecipeOrders))
	}

	wantRestaurant := []struct {
		title    string
		calories int
		price    int
	}{
		{"バランス重視セット", 540, 1350},
		{"ヘルシー軽めセット", 420, 1380},
		{"ボリューム満点セット", 660, 1660},
	}
	for i, w := range wantRestaurant {
		got := plan.RestaurantOrders[i]
		if got.Title != w.title || got.TotalCalories != w.calories || got.TotalPrice != w.price {
			t.Errorf("restaurant[%d]: expected %s %d/%d, got %s %d/%d",
				i, w.title, w.calories, w.price, got.Title, got.TotalCalories, got.TotalPrice)
		}
	}

	wantRecipe := []struct {
		calories int
		price    int
	}{
		{510, 580},
		{390, 610},
		{600, 780},
	}
	for i, w := range wantRecipe {
		got := plan.RecipeOrders[i]
		if got.TotalCalories != w.calories || got.TotalPrice != w.price {
			t.Errorf("recipe[%d]: expected %d/%d, got %d/%d", i, w.calories, w.price, got.TotalCalories, got.TotalPrice)
		}
	}
}

func TestBuild_Floors(t *testing.T) {
	req := DefaultRequest()
	req.Calories = 555
	plan := Build(req)
	// 555 * 0.9 = 499.5, 555 * 0.65 = 360.75
	if got := plan.RestaurantOrders[0].TotalCalories; got != 499 {
		t.Errorf("expected 499, got %d", got)
	}
	if got := plan.RecipeOrders[1].TotalCalories; got != 360 {
		t.Errorf("expected 360, got %d", got)
	}
}

func TestBuild_TypeSelectsBundles(t *testing.T) {
	req := DefaultRequest()

	req.Type = model.TypeRestaurant
	plan := Build(req)
	if len(plan.RestaurantOrders) != 3 || len(plan.RecipeOrders) != 0 {
		t.Errorf("restaurant plan: got %d+%d", len(plan.RestaurantOrders), len(plan.RecipeOrders))
	}

	req.Type = model.TypeRecipe
	plan = Build(req)
	if len(plan.RestaurantOrders) != 0 || len(plan.RecipeOrders) != 3 {
		t.Errorf("recipe plan: got %d+%d", len(plan.RestaurantOrders), len(plan.RecipeOrders))
	}
}

func TestBuild_IgnoresBudgetPeopleAndPreferences(t *testing.T) {
	a := DefaultRequest()
	b := DefaultRequest()
	b.Budget = 100
	b.PeopleCount = 5
	b.Preferences = []string{"高タンパク"}

	pa, pb := Build(a), Build(b)
	for i := range pa.RestaurantOrders {
		if pa.RestaurantOrders[i].TotalCalories != pb.RestaurantOrders[i].TotalCalories ||
			pa.RestaurantOrders[i].TotalPrice != pb.RestaurantOrders[i].TotalPrice {
			t.Fatalf("bundle %d changed with unused inputs", i)
		}
	}
}

func TestBuild_FreshEachCall(t *testing.T) {
	first := Build(DefaultRequest())
	first.RestaurantOrders[0].Items[0].Price = 1
	second := Build(DefaultRequest())
	if second.RestaurantOrders[0].Items[0].Price != 900 {
		t.Fatal("bundles share state between calls")
	}
}

func TestSuggestions(t *testing.T) {
	if got := len(Suggestions(model.TypeAll)); got != 6 {
		t.Errorf("expected 6 suggestions, got %d", got)
	}
	for _, s := range Suggestions(model.TypeRecipe) {
		if s.Type != model.TypeRecipe {
			t.Errorf("unexpected %s suggestion %s", s.Type, s.ID)
		}
	}
}
