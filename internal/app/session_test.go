package app

import (
	"context"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/model"
)

type fakeCreator struct {
	res      any
	payloads []any
}

func (f *fakeCreator) CreatePost(ctx context.Context, payload any) any {
	f.payloads = append(f.payloads, payload)
	return f.res
}

func postByType(t *testing.T, typ model.PostType) model.Post {
	t.Helper()
	for _, p := range catalog.Posts() {
		if p.Type == typ {
			return p
		}
	}
	t.Fatalf("no %s post in catalog", typ)
	return model.Post{}
}

func TestSession_DefaultsToBudget(t *testing.T) {
	s := NewSession(nil)
	if s.Tab() != TabBudget || s.Screen() != ScreenBudget {
		t.Fatalf("expected budget tab, got %s / %s", s.Tab(), s.Screen())
	}
	s.SetTab("nowhere")
	if s.Tab() != TabBudget {
		t.Errorf("unknown tab should be ignored, got %s", s.Tab())
	}
	s.SetTab(TabSaved)
	if s.Screen() != ScreenSaved {
		t.Errorf("expected saved screen, got %s", s.Screen())
	}
}

func TestSession_ScreenPrecedence(t *testing.T) {
	s := NewSession(nil)
	s.SetTab(TabSearch)
	restaurant := postByType(t, model.TypeRestaurant)
	recipe := postByType(t, model.TypeRecipe)

	s.OpenPost(recipe)
	if s.Screen() != ScreenRecipeDetail {
		t.Fatalf("expected recipe detail, got %s", s.Screen())
	}
	s.OpenPost(restaurant)
	if s.Screen() != ScreenRestaurantDetail {
		t.Fatalf("restaurant should win over recipe, got %s", s.Screen())
	}
	s.OpenCreatePost()
	if s.Screen() != ScreenCreatePost {
		t.Fatalf("create form should win, got %s", s.Screen())
	}

	s.CloseCreatePost()
	s.CloseRestaurant()
	if s.Screen() != ScreenRecipeDetail {
		t.Fatalf("expected recipe detail after closing restaurant, got %s", s.Screen())
	}
	s.CloseRecipe()
	if s.Screen() != ScreenSearch {
		t.Fatalf("expected active tab, got %s", s.Screen())
	}
}

func TestSession_OpenPostIgnoresOtherTypes(t *testing.T) {
	s := NewSession(nil)
	s.OpenPost(postByType(t, model.TypeFoodWalk))
	s.OpenPost(postByType(t, model.TypeSightseeing))
	if s.SelectedRestaurant() != nil || s.SelectedRecipe() != nil || s.Screen() != ScreenBudget {
		t.Fatalf("expected no selection, got %s", s.Screen())
	}
}

func TestSession_ToggleSave(t *testing.T) {
	s := NewSession(nil)
	p := catalog.Posts()[0]
	if !s.ToggleSave(p) || !s.IsSaved(p.ID) {
		t.Fatal("expected post saved")
	}
	if s.ToggleSave(p) || s.IsSaved(p.ID) || len(s.Saved()) != 0 {
		t.Fatal("expected post unsaved")
	}
}

func TestSession_EditToPlan(t *testing.T) {
	s := NewSession(nil)
	s.SetTab(TabSearch)
	s.EditToPlan("カルボナーラ")
	if s.Tab() != TabBudget || s.BudgetQuery() != "カルボナーラ" {
		t.Fatalf("unexpected state %s %q", s.Tab(), s.BudgetQuery())
	}
}

func TestSession_SubmitPost(t *testing.T) {
	ok := &fakeCreator{res: map[string]any{"id": "x"}}
	s := NewSession(ok)
	s.OpenCreatePost()
	res := s.SubmitPost(context.Background(), map[string]any{"title": "t"})
	if !res.OK || res.Message != SubmitSucceeded {
		t.Fatalf("unexpected result %+v", res)
	}
	if s.Screen() == ScreenCreatePost {
		t.Error("form should close after submit")
	}
	if len(ok.payloads) != 1 {
		t.Errorf("expected one call, got %d", len(ok.payloads))
	}

	failed := NewSession(&fakeCreator{})
	if res := failed.SubmitPost(context.Background(), nil); res.OK || res.Message != SubmitFailed {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res := NewSession(nil).SubmitPost(context.Background(), nil); res.OK {
		t.Fatal("expected failure without a creator")
	}
}
