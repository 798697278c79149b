package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/planner"
	"github.com/bryan-buckman/foodmood/internal/rating"
	"github.com/bryan-buckman/foodmood/internal/search"
	"github.com/go-chi/chi/v5"
)

const (
	guestID   = "guest"
	guestName = "ゲスト"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListPosts()
	if err != nil {
		log.Printf("List posts: %v", err)
		http.Error(w, "Failed to list posts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.loadPost(w, chi.URLParam(r, "postID"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// createPostRequest accepts both stored post JSON and the create form's
// flat fields. Genre arrives as a list from stored posts and as a single
// string from the form.
type createPostRequest struct {
	model.Post
	Genre json.RawMessage `json:"genre"`

	StoreName        string          `json:"storeName"`
	StoreAddress     string          `json:"storeAddress"`
	GoodPoints       string          `json:"goodPoints"`
	BadPoints        string          `json:"badPoints"`
	CookingTips      string          `json:"cookingTips"`
	Ingredients      []ingredientRow `json:"ingredients"`
	ProductName      string          `json:"productName"`
	PurchaseLocation string          `json:"purchaseLocation"`
	Brand            string          `json:"brand"`
}

type ingredientRow struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

func (req *createPostRequest) toPost() (model.Post, error) {
	p := req.Post
	p.ID = ""
	if strings.TrimSpace(p.Title) == "" {
		return p, errors.New("title is required")
	}
	if !p.Type.Valid() && p.Type != model.TypePurchase {
		return p, errors.New("unknown post type")
	}
	if len(req.Genre) > 0 && string(req.Genre) != "null" {
		var list []model.RestaurantGenre
		if err := json.Unmarshal(req.Genre, &list); err != nil {
			var one string
			if err := json.Unmarshal(req.Genre, &one); err != nil {
				return p, errors.New("genre must be a string or a list")
			}
			if one != "" {
				list = []model.RestaurantGenre{model.RestaurantGenre(one)}
			}
		}
		p.Genre = list
	}
	if p.Location == "" {
		p.Location = firstNonEmpty(req.StoreAddress, req.PurchaseLocation)
	}
	if p.Author == "" {
		p.Author = guestName
	}
	for _, extra := range []string{req.StoreName, req.ProductName, req.Brand} {
		if extra != "" {
			p.Tags = append(p.Tags, extra)
		}
	}

	report := model.ReportDetails{}
	if req.GoodPoints != "" {
		report.ProsPoints = []string{req.GoodPoints}
	}
	if req.BadPoints != "" {
		report.ConsPoints = []string{req.BadPoints}
	}
	if req.CookingTips != "" {
		report.CookingTips = []string{req.CookingTips}
	}
	for _, ing := range req.Ingredients {
		report.Ingredients = append(report.Ingredients, model.LabeledValue{Label: ing.Name, Value: ing.Amount})
	}
	if p.ReportDetails == nil && (report.ProsPoints != nil || report.ConsPoints != nil || report.CookingTips != nil || report.Ingredients != nil) {
		p.ReportDetails = &report
	}
	p.Likes, p.Comments, p.IsLiked = 0, 0, false
	return p, nil
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	post, err := req.toPost()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.CreatePost(&post); err != nil {
		log.Printf("Create post: %v", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}
	log.Printf("Created %s post %s: %s", post.Type, post.ID, post.Title)
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.ListPosts()
	if err != nil {
		log.Printf("List posts: %v", err)
		http.Error(w, "Failed to list posts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, search.Filter(posts, search.ParseQuery(r.URL.Query())))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req := planner.DefaultRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, planner.Build(req))
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, planner.Suggestions(model.PostType(r.URL.Query().Get("type"))))
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	post, ok := s.loadPost(w, chi.URLParam(r, "postID"))
	if !ok {
		return
	}
	ratings, err := s.store.ListRatings(post.ID)
	if err != nil {
		log.Printf("List ratings of %s: %v", post.ID, err)
		http.Error(w, "Failed to list ratings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ratings": ratings,
		"summary": rating.Summarize(ratings),
	})
}

func (s *Server) handleAddRating(w http.ResponseWriter, r *http.Request) {
	post, ok := s.loadPost(w, chi.URLParam(r, "postID"))
	if !ok {
		return
	}
	var in rating.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID := firstNonEmpty(r.Header.Get("X-User-ID"), guestID)
	userName := firstNonEmpty(r.Header.Get("X-User-Name"), guestName)
	rec := in.ToRating(post.ID, userID, userName, "")
	if err := s.store.AddRating(&rec); err != nil {
		log.Printf("Add rating to %s: %v", post.ID, err)
		http.Error(w, "Failed to save rating", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.saved.List())
}

func (s *Server) handleToggleSaved(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	post, ok := s.loadPost(w, req.ID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    post.ID,
		"saved": s.saved.Toggle(*post),
		"count": s.saved.Len(),
	})
}

// loadPost writes 404 or 500 and reports false when the post is unavailable.
func (s *Server) loadPost(w http.ResponseWriter, id string) (*model.Post, bool) {
	post, err := s.store.GetPost(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		log.Printf("Get post %s: %v", id, err)
		http.Error(w, "Failed to load post", http.StatusInternalServerError)
		return nil, false
	}
	return post, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
