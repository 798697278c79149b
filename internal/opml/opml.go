// Package opml reads and writes feed subscription lists.
package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bryan-buckman/foodmood/internal/model"
)

type document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    head     `xml:"head"`
	Body    body     `xml:"body"`
}

type head struct {
	Title       string `xml:"title,omitempty"`
	DateCreated string `xml:"dateCreated,omitempty"`
}

type body struct {
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	HTMLURL  string    `xml:"htmlUrl,attr,omitempty"`
	Outlines []outline `xml:"outline,omitempty"`
}

// Entry is one subscription found in a document.
type Entry struct {
	Title string
	URL   string
}

// Parse returns every feed outline in r, at any depth. Grouping outlines
// are flattened away and duplicate URLs are kept once.
func Parse(r io.Reader) ([]Entry, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode opml: %w", err)
	}
	entries := []Entry{}
	seen := make(map[string]bool)
	var walk func([]outline)
	walk = func(outlines []outline) {
		for _, o := range outlines {
			if u := strings.TrimSpace(o.XMLURL); u != "" && !seen[u] {
				seen[u] = true
				title := o.Title
				if title == "" {
					title = o.Text
				}
				if title == "" {
					title = u
				}
				entries = append(entries, Entry{Title: title, URL: u})
			}
			walk(o.Outlines)
		}
	}
	walk(doc.Body.Outlines)
	return entries, nil
}

// Export writes sources as a flat OPML 2.0 document.
func Export(title string, sources []model.Source) ([]byte, error) {
	doc := document{
		Version: "2.0",
		Head: head{
			Title:       title,
			DateCreated: time.Now().Format(time.RFC1123Z),
		},
	}
	for _, s := range sources {
		doc.Body.Outlines = append(doc.Body.Outlines, outline{
			Text:   s.Title,
			Title:  s.Title,
			Type:   "rss",
			XMLURL: s.URL,
		})
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode opml: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
