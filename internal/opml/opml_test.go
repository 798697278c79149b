package opml

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/bryan-buckman/foodmood/internal/model"
)

const nested = `<?xml version="1.0"?>
<opml version="2.0">
  <head><title>subs</title></head>
  <body>
    <outline text="レシピ">
      <outline text="週末キッチン" xmlUrl="https://kitchen.example/feed"/>
      <outline text="和食">
        <outline text="だし" title="だしの店" xmlUrl="https://dashi.example/rss"/>
      </outline>
    </outline>
    <outline text="dup" xmlUrl="https://kitchen.example/feed"/>
    <outline xmlUrl="https://untitled.example/rss"/>
  </body>
</opml>`

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(nested))
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Title: "週末キッチン", URL: "https://kitchen.example/feed"},
		{Title: "だしの店", URL: "https://dashi.example/rss"},
		{Title: "https://untitled.example/rss", URL: "https://untitled.example/rss"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse(strings.NewReader("<opml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestExportThenParse(t *testing.T) {
	sources := []model.Source{
		{ID: 1, Title: "週末キッチン", URL: "https://kitchen.example/feed"},
		{ID: 2, Title: "だしの店", URL: "https://dashi.example/rss"},
	}
	data, err := Export("FoodMood sources", sources)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		t.Error("missing xml header")
	}
	entries, err := Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[1].URL != "https://dashi.example/rss" {
		t.Errorf("unexpected entries %+v", entries)
	}
}
