package app

import (
	"strconv"
	"strings"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// Ingredient is one row of the recipe form.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Step is one instruction of the recipe form.
type Step struct {
	Description string `json:"description"`
}

// Draft is the create-post form. Numeric fields hold the raw text the
// user typed; Payload converts them.
type Draft struct {
	Type        model.PostType // recipe, restaurant or purchase
	Title       string
	Description string
	Budget      string
	TimeMinutes string
	Tags        []string
	Texture     string
	Temperature string

	Servings    string
	Calories    string
	CookingTips string
	Ingredients []Ingredient
	Steps       []Step

	StoreName    string
	StoreAddress string
	Location     string
	Genre        string
	GoodPoints   string
	BadPoints    string

	ProductName      string
	PurchaseLocation string
	Brand            string
}

// NewDraft starts a recipe draft with one empty ingredient and step row.
func NewDraft() *Draft {
	return &Draft{
		Type:        model.TypeRecipe,
		Servings:    "2",
		Tags:        []string{},
		Ingredients: []Ingredient{{}},
		Steps:       []Step{{}},
	}
}

// AddTag appends a trimmed tag unless it is blank or already present.
func (d *Draft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range d.Tags {
		if t == tag {
			return false
		}
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag drops tag if present.
func (d *Draft) RemoveTag(tag string) {
	out := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	d.Tags = out
}

// Payload builds the JSON body for the chosen post kind. Unparseable
// numbers become 0 (servings default to 2), and incomplete ingredient and
// step rows are dropped.
func (d *Draft) Payload() map[string]any {
	tags := append([]string{}, d.Tags...)
	p := map[string]any{
		"type":        string(d.Type),
		"title":       d.Title,
		"description": d.Description,
		"budget":      atoi(d.Budget, 0),
		"timeMinutes": atoi(d.TimeMinutes, 0),
		"tags":        tags,
		"texture":     d.Texture,
		"temperature": d.Temperature,
	}
	switch d.Type {
	case model.TypeRecipe:
		ingredients := []Ingredient{}
		for _, ing := range d.Ingredients {
			if ing.Name != "" && ing.Amount != "" {
				ingredients = append(ingredients, ing)
			}
		}
		steps := []Step{}
		for _, st := range d.Steps {
			if st.Description != "" {
				steps = append(steps, st)
			}
		}
		p["servings"] = atoi(d.Servings, 2)
		p["calories"] = atoi(d.Calories, 0)
		p["cookingTips"] = d.CookingTips
		p["ingredients"] = ingredients
		p["steps"] = steps
	case model.TypeRestaurant:
		p["storeName"] = d.StoreName
		p["storeAddress"] = d.StoreAddress
		p["location"] = d.Location
		p["genre"] = d.Genre
		p["goodPoints"] = d.GoodPoints
		p["badPoints"] = d.BadPoints
	default:
		p["productName"] = d.ProductName
		p["purchaseLocation"] = d.PurchaseLocation
		p["brand"] = d.Brand
	}
	return p
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
