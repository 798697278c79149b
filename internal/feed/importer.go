// Package feed imports food-blog RSS and Atom feeds as recipe posts.
package feed

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/bryan-buckman/foodmood/internal/database"
	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/mmcdole/gofeed"
)

// Worker counts per backend. SQLite locks on write, so it gets one.
const (
	WorkersPostgres = 10
	WorkersSQLite   = 1
)

const (
	maxDescriptionRunes = 140
	maxErrorLen         = 200
)

// Importer fetches sources and stores their entries as posts.
type Importer struct {
	store   database.Store
	parser  *gofeed.Parser
	workers int
	limiter *hostLimiter
}

// NewImporter creates an importer sized for the store's backend.
// A nil client means http.DefaultClient.
func NewImporter(store database.Store, client *http.Client) *Importer {
	workers := WorkersSQLite
	if store.SupportsHighConcurrency() {
		workers = WorkersPostgres
	}
	parser := gofeed.NewParser()
	parser.UserAgent = "foodmood/1.0"
	if client != nil {
		parser.Client = client
	}
	return &Importer{
		store:   store,
		parser:  parser,
		workers: workers,
		limiter: newHostLimiter(DelayBetweenHostHits),
	}
}

// ImportSource fetches one source and returns the number of new posts.
func (im *Importer) ImportSource(ctx context.Context, src model.Source) (int, error) {
	host := hostOf(src.URL)
	if err := im.limiter.acquire(ctx, host); err != nil {
		return 0, fmt.Errorf("wait for %s: %w", host, err)
	}
	defer im.limiter.release(host)

	parsed, err := im.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		_ = im.store.UpdateSourceError(src.ID, truncateError(err.Error()))
		return 0, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	// Sources imported without a title are named after their URL.
	if parsed.Title != "" && src.Title == src.URL {
		if err := im.store.UpdateSourceTitle(src.ID, parsed.Title); err != nil {
			log.Printf("Error updating title for source %d: %v", src.ID, err)
		} else {
			src.Title = parsed.Title
		}
	}

	now := time.Now()
	added := 0
	for _, item := range parsed.Items {
		guid := item.GUID
		if guid == "" {
			guid = item.Link
		}
		if guid == "" {
			continue
		}
		post := ItemToPost(src, parsed, item, now)
		isNew, err := im.store.AddImportedPost(src.ID, guid, &post)
		if err != nil {
			log.Printf("Error importing %s: %v", guid, err)
			continue
		}
		if isNew {
			added++
		}
	}

	if err := im.store.UpdateSourceLastFetched(src.ID, now); err != nil {
		log.Printf("Error updating last_fetched for source %d: %v", src.ID, err)
	}
	return added, nil
}

// ImportAll fetches every source. SQLite stores are walked one by one,
// PostgreSQL stores through a worker pool. The result maps source id to
// new post count; failed sources are logged and left out.
func (im *Importer) ImportAll(ctx context.Context) (map[int64]int, error) {
	sources, err := im.store.GetSources()
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	results := make(map[int64]int)
	if len(sources) == 0 {
		return results, nil
	}
	log.Printf("Importing %d sources with %d workers", len(sources), im.workers)

	if im.workers <= 1 {
		for i, src := range sources {
			if err := ctx.Err(); err != nil {
				log.Printf("Import cancelled after %d/%d sources", i, len(sources))
				return results, err
			}
			n, err := im.ImportSource(ctx, src)
			if err != nil {
				log.Printf("Failed to import %s: %v", src.URL, err)
				continue
			}
			results[src.ID] = n
		}
		return results, nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		jobs = make(chan model.Source)
	)
	for i := 0; i < im.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range jobs {
				n, err := im.ImportSource(ctx, src)
				if err != nil {
					log.Printf("Failed to import %s: %v", src.URL, err)
					continue
				}
				mu.Lock()
				results[src.ID] = n
				mu.Unlock()
			}
		}()
	}
dispatch:
	for _, src := range sources {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- src:
		}
	}
	close(jobs)
	wg.Wait()
	return results, ctx.Err()
}

// ItemToPost maps a feed entry to a recipe post. The image comes from
// the entry, then the first <img> in its HTML, then the feed itself.
func ItemToPost(src model.Source, parsed *gofeed.Feed, item *gofeed.Item, now time.Time) model.Post {
	body := item.Content
	if body == "" {
		body = item.Description
	}

	post := model.Post{
		Type:        model.TypeRecipe,
		Title:       item.Title,
		Description: summarize(body),
		Author:      src.Title,
		Tags:        append([]string{}, item.Categories...),
		CreatedAt:   now,
	}
	if item.Author != nil && item.Author.Name != "" {
		post.Author = item.Author.Name
	}
	if item.PublishedParsed != nil {
		post.CreatedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		post.CreatedAt = *item.UpdatedParsed
	}

	switch {
	case item.Image != nil && item.Image.URL != "":
		post.ImageURL = item.Image.URL
	case firstImage(body) != "":
		post.ImageURL = firstImage(body)
	default:
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") {
				post.ImageURL = enc.URL
				break
			}
		}
		if post.ImageURL == "" && parsed != nil && parsed.Image != nil {
			post.ImageURL = parsed.Image.URL
		}
	}
	return post
}

func firstImage(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

// summarize strips markup and shortens the text for a post card.
// truncateError cuts msg to maxErrorLen runes.
func truncateError(msg string) string {
	if utf8.RuneCountInString(msg) <= maxErrorLen {
		return msg
	}
	return string([]rune(msg)[:maxErrorLen])
}

func summarize(html string) string {
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxDescriptionRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxDescriptionRunes]) + "…"
}
