package app

import (
	"context"
	"reflect"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/model"
)

type staticLister []model.Post

func (l staticLister) GetPosts(ctx context.Context) []model.Post { return l }

func TestFeed_ToggleLike(t *testing.T) {
	f := NewFeed([]model.Post{{ID: "a", Likes: 10}, {ID: "b", Likes: 3, IsLiked: true}})

	if !f.ToggleLike("a") || f.Posts()[0].Likes != 11 {
		t.Fatalf("expected like, got %+v", f.Posts()[0])
	}
	if f.ToggleLike("a") || f.Posts()[0].Likes != 10 {
		t.Fatalf("expected unlike, got %+v", f.Posts()[0])
	}
	if f.ToggleLike("b") || f.Posts()[1].Likes != 2 {
		t.Fatalf("expected unlike, got %+v", f.Posts()[1])
	}
	if f.ToggleLike("missing") {
		t.Error("unknown id should report false")
	}
}

func TestFeed_Load(t *testing.T) {
	f := NewFeed(catalog.Posts())
	f.Load(context.Background(), staticLister{})
	if len(f.Posts()) != len(catalog.Posts()) {
		t.Fatal("empty fetch should keep the initial posts")
	}
	f.Load(context.Background(), staticLister{{ID: "remote"}})
	if len(f.Posts()) != 1 || f.Posts()[0].ID != "remote" {
		t.Fatalf("expected fetched posts, got %+v", f.Posts())
	}
}

func TestProfile_Grid(t *testing.T) {
	p := NewProfile("foodie", Stats{Posts: 24}, catalog.Posts())
	if len(p.Grid()) != GridSize {
		t.Fatalf("expected %d grid posts, got %d", GridSize, len(p.Grid()))
	}
	p.SetFilter(model.TypeRecipe)
	for _, post := range p.Grid() {
		if post.Type != model.TypeRecipe {
			t.Errorf("unexpected %s in recipe grid", post.Type)
		}
	}
	p.SetFilter(model.TypeSightseeing)
	for _, post := range p.Grid() {
		if post.Type != model.TypeRecipe {
			t.Errorf("unsupported filter should be ignored, got %s", post.Type)
		}
	}

	p.Load(context.Background(), staticLister{{ID: "r", Type: model.TypeRestaurant}})
	p.SetFilter(model.TypeAll)
	if len(p.Grid()) != 1 {
		t.Errorf("expected fetched grid, got %d", len(p.Grid()))
	}
}

func TestProfile_ExpertLevel(t *testing.T) {
	tests := []struct {
		posts  int
		expert bool
		level  int
	}{
		{0, false, 1},
		{19, false, 1},
		{20, true, 1},
		{24, true, 1},
		{30, true, 2},
		{59, true, 4},
		{500, true, MaxExpertLevel},
	}
	for _, tt := range tests {
		p := NewProfile("u", Stats{Posts: tt.posts}, nil)
		if p.IsExpert() != tt.expert || p.ExpertLevel() != tt.level {
			t.Errorf("posts=%d: got expert=%v level=%d", tt.posts, p.IsExpert(), p.ExpertLevel())
		}
	}
}

func TestDraft_Payload(t *testing.T) {
	d := NewDraft()
	d.Title = "カレー"
	d.Budget = "800"
	d.TimeMinutes = "abc"
	d.Servings = ""
	d.Ingredients = append(d.Ingredients, Ingredient{Name: "鶏肉", Amount: "300g"}, Ingredient{Name: "塩"})
	d.Steps = append(d.Steps, Step{Description: "煮込む"})
	if !d.AddTag(" 辛口 ") || d.AddTag("辛口") || d.AddTag("  ") {
		t.Fatal("tag dedup failed")
	}

	p := d.Payload()
	if p["type"] != "recipe" || p["budget"] != 800 || p["timeMinutes"] != 0 || p["servings"] != 2 {
		t.Errorf("unexpected numbers %v %v %v %v", p["type"], p["budget"], p["timeMinutes"], p["servings"])
	}
	if got := p["ingredients"].([]Ingredient); !reflect.DeepEqual(got, []Ingredient{{Name: "鶏肉", Amount: "300g"}}) {
		t.Errorf("unexpected ingredients %v", got)
	}
	if got := p["steps"].([]Step); len(got) != 1 {
		t.Errorf("unexpected steps %v", got)
	}
	if !reflect.DeepEqual(p["tags"], []string{"辛口"}) {
		t.Errorf("unexpected tags %v", p["tags"])
	}

	d.RemoveTag("辛口")
	d.Type = model.TypePurchase
	d.Brand = "acme"
	p = d.Payload()
	if p["brand"] != "acme" || p["servings"] != nil {
		t.Errorf("unexpected purchase payload %v", p)
	}
	if len(p["tags"].([]string)) != 0 {
		t.Errorf("expected tag removed, got %v", p["tags"])
	}
}

func TestDraft_RemoveTagKeepsEarlierPayload(t *testing.T) {
	d := NewDraft()
	for _, tag := range []string{"a", "b", "c"} {
		d.AddTag(tag)
	}
	before := d.Payload()

	d.RemoveTag("a")
	d.AddTag("d")
	if !reflect.DeepEqual(before["tags"], []string{"a", "b", "c"}) {
		t.Errorf("earlier payload changed: %v", before["tags"])
	}
	if !reflect.DeepEqual(d.Tags, []string{"b", "c", "d"}) {
		t.Errorf("unexpected tags %v", d.Tags)
	}
}
