package rating

import (
	"errors"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/catalog"
)

func TestSummarize_Catalog(t *testing.T) {
	s := Summarize(catalog.Ratings())
	if s.Total != 5 {
		t.Fatalf("expected 5 ratings, got %d", s.Total)
	}
	// (4.5 + 5 + 4 + 4.5 + 3.5) / 5
	if s.Average != 4.3 {
		t.Errorf("expected average 4.3, got %v", s.Average)
	}

	want := map[int]int{5: 1, 4: 3, 3: 1, 2: 0, 1: 0}
	if len(s.Distribution) != 5 || s.Distribution[0].Star != 5 || s.Distribution[4].Star != 1 {
		t.Fatalf("unexpected distribution layout %+v", s.Distribution)
	}
	for _, b := range s.Distribution {
		if b.Count != want[b.Star] {
			t.Errorf("star %d: expected %d, got %d", b.Star, want[b.Star], b.Count)
		}
	}
	if s.Distribution[1].Percentage != 60 {
		t.Errorf("expected 60%% four-star, got %v", s.Distribution[1].Percentage)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Average != 0 {
		t.Fatalf("unexpected summary %+v", s)
	}
	for _, b := range s.Distribution {
		if b.Percentage != 0 {
			t.Errorf("star %d: expected 0%%, got %v", b.Star, b.Percentage)
		}
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		in   float64
		want StarCounts
	}{
		{4.5, StarCounts{Full: 4, Half: true, Empty: 0}},
		{4.2, StarCounts{Full: 4, Half: false, Empty: 1}},
		{5, StarCounts{Full: 5, Empty: 0}},
		{0, StarCounts{Full: 0, Empty: 5}},
		{3.75, StarCounts{Full: 3, Half: true, Empty: 1}},
	}
	for _, tt := range tests {
		if got := Stars(tt.in); got != tt.want {
			t.Errorf("Stars(%v): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		rating float64
		want   error
	}{
		{0, ErrNoRating},
		{0.5, nil},
		{3, nil},
		{5, nil},
		{5.5, ErrRatingInvalid},
		{2.3, ErrRatingInvalid},
		{-1, ErrRatingInvalid},
	}
	for _, tt := range tests {
		err := Input{Rating: tt.rating}.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("rating %v: expected %v, got %v", tt.rating, tt.want, err)
		}
	}
}

func TestFeedback_MutuallyExclusive(t *testing.T) {
	var f Feedback
	if v := f.Good("1"); !v.Good || v.Bad {
		t.Fatalf("expected good, got %+v", v)
	}
	if v := f.Bad("1"); v.Good || !v.Bad {
		t.Fatalf("expected bad only, got %+v", v)
	}
	if v := f.Bad("1"); v.Good || v.Bad {
		t.Fatalf("expected cleared, got %+v", v)
	}
	if v := f.Get("other"); v.Good || v.Bad {
		t.Fatalf("expected zero vote, got %+v", v)
	}
}
