package saved

import (
	"sync"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/model"
)

func TestToggle_AddRemove(t *testing.T) {
	s := New()
	a := model.Post{ID: "a"}
	b := model.Post{ID: "b"}
	c := model.Post{ID: "c"}

	for _, p := range []model.Post{a, b, c} {
		if !s.Toggle(p) {
			t.Fatalf("expected %s saved", p.ID)
		}
	}

	if s.Toggle(b) {
		t.Fatal("expected b removed")
	}
	got := s.List()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected list %v", got)
	}
	if s.Contains("b") {
		t.Error("b should not be saved")
	}
}

func TestToggle_DoubleToggleRestores(t *testing.T) {
	s := New()
	s.Toggle(model.Post{ID: "1"})
	s.Toggle(model.Post{ID: "2"})

	s.Toggle(model.Post{ID: "3"})
	s.Toggle(model.Post{ID: "3"})

	got := s.List()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestToggle_DedupByID(t *testing.T) {
	s := New()
	s.Toggle(model.Post{ID: "1", Title: "old"})
	// Same ID with different content still counts as the saved post.
	if s.Toggle(model.Post{ID: "1", Title: "new"}) {
		t.Fatal("expected removal by id")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d", s.Len())
	}
}

func TestList_IsCopy(t *testing.T) {
	s := New()
	s.Toggle(model.Post{ID: "1"})
	list := s.List()
	list[0].ID = "mutated"
	if !s.Contains("1") {
		t.Fatal("list mutation leaked into set")
	}
}

func TestToggle_Concurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle(model.Post{ID: "x"})
		}()
	}
	wg.Wait()
	// An even number of toggles leaves the post unsaved.
	if s.Contains("x") {
		t.Fatal("expected x unsaved after 50 toggles")
	}
}
