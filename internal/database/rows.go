package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/google/uuid"
)

const postColumns = "id, type, title, description, image_url, author, author_avatar, rating, is_expert, expert_level, facets, time_minutes, budget, location, tags, likes, comments, created_at, report_details"

const ratingColumns = "id, post_id, user_id, user_name, user_avatar, rating, created_at, good_count, bad_count, title, description, budget, time_minutes, texture, temperature, good_points, bad_points, image_url"

// postFacets is the JSON shape of the facets column.
type postFacets struct {
	Situation        []model.Situation        `json:"situation,omitempty"`
	Genre            []model.RestaurantGenre  `json:"genre,omitempty"`
	Priority         []model.Priority         `json:"priority,omitempty"`
	ShopPreference   []model.ShopPreference   `json:"shopPreference,omitempty"`
	Category         []model.RecipeCategory   `json:"category,omitempty"`
	RecipeGenre      []model.RecipeGenre      `json:"recipeGenre,omitempty"`
	RecipePreference []model.RecipePreference `json:"recipePreference,omitempty"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

// preparePost assigns an id and creation time when missing.
func preparePost(p *model.Post) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func postArgs(p *model.Post) ([]any, error) {
	facets, err := json.Marshal(postFacets{
		Situation:        p.Situation,
		Genre:            p.Genre,
		Priority:         p.Priority,
		ShopPreference:   p.ShopPreference,
		Category:         p.Category,
		RecipeGenre:      p.RecipeGenre,
		RecipePreference: p.RecipePreference,
	})
	if err != nil {
		return nil, fmt.Errorf("encode facets: %w", err)
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	var report sql.NullString
	if p.ReportDetails != nil {
		b, err := json.Marshal(p.ReportDetails)
		if err != nil {
			return nil, fmt.Errorf("encode report details: %w", err)
		}
		report = sql.NullString{String: string(b), Valid: true}
	}
	return []any{
		p.ID, string(p.Type), p.Title, p.Description, p.ImageURL, p.Author, p.AuthorAvatar,
		p.Rating, p.IsExpert, p.ExpertLevel, string(facets), p.TimeMinutes, p.Budget,
		p.Location, string(tags), p.Likes, p.Comments, p.CreatedAt.UTC(), report,
	}, nil
}

func scanPost(row rowScanner) (*model.Post, error) {
	var p model.Post
	var typ, facets, tags string
	var report sql.NullString
	var createdAt sql.NullTime
	if err := row.Scan(&p.ID, &typ, &p.Title, &p.Description, &p.ImageURL, &p.Author, &p.AuthorAvatar,
		&p.Rating, &p.IsExpert, &p.ExpertLevel, &facets, &p.TimeMinutes, &p.Budget,
		&p.Location, &tags, &p.Likes, &p.Comments, &createdAt, &report); err != nil {
		return nil, err
	}
	p.Type = model.PostType(typ)
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time
	}
	var f postFacets
	if err := json.Unmarshal([]byte(facets), &f); err != nil {
		return nil, fmt.Errorf("decode facets of post %s: %w", p.ID, err)
	}
	p.Situation, p.Genre, p.Priority, p.ShopPreference = f.Situation, f.Genre, f.Priority, f.ShopPreference
	p.Category, p.RecipeGenre, p.RecipePreference = f.Category, f.RecipeGenre, f.RecipePreference
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of post %s: %w", p.ID, err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if report.Valid && report.String != "" {
		p.ReportDetails = &model.ReportDetails{}
		if err := json.Unmarshal([]byte(report.String), p.ReportDetails); err != nil {
			return nil, fmt.Errorf("decode report details of post %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func scanPosts(rows *sql.Rows) ([]model.Post, error) {
	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func ratingArgs(r *model.Rating) []any {
	return []any{
		r.ID, r.PostID, r.UserID, r.UserName, r.UserAvatar, r.Rating, r.CreatedAt.UTC(),
		r.GoodCount, r.BadCount, r.Title, r.Description, r.Budget, r.TimeMinutes,
		r.Texture, r.Temperature, r.GoodPoints, r.BadPoints, r.ImageURL,
	}
}

func prepareRating(r *model.Rating) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

func scanRatings(rows *sql.Rows) ([]model.Rating, error) {
	ratings := []model.Rating{}
	for rows.Next() {
		var r model.Rating
		var createdAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.PostID, &r.UserID, &r.UserName, &r.UserAvatar, &r.Rating, &createdAt,
			&r.GoodCount, &r.BadCount, &r.Title, &r.Description, &r.Budget, &r.TimeMinutes,
			&r.Texture, &r.Temperature, &r.GoodPoints, &r.BadPoints, &r.ImageURL); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

func scanSources(rows *sql.Rows) ([]model.Source, error) {
	sources := []model.Source{}
	for rows.Next() {
		var s model.Source
		var lastFetched sql.NullTime
		var lastError sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.URL, &lastFetched, &lastError, &s.PostCount); err != nil {
			return nil, err
		}
		if lastFetched.Valid {
			s.LastFetched = lastFetched.Time
		}
		s.LastError = lastError.String
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// placeholders returns "?, ?, ..." or "$1, $2, ..." for n arguments.
func placeholders(n int, dollar bool) string {
	marks := make([]string, n)
	for i := range marks {
		if dollar {
			marks[i] = "$" + strconv.Itoa(i+1)
		} else {
			marks[i] = "?"
		}
	}
	return strings.Join(marks, ", ")
}

// pollingInterval parses a stored interval and applies the minimum.
func pollingInterval(val string) int {
	mins, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || mins < MinPollingIntervalMinutes {
		return MinPollingIntervalMinutes
	}
	return mins
}
