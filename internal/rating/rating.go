// Package rating aggregates reviews and tracks per-review feedback.
package rating

import (
	"errors"
	"math"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// MaxRating is the top of the five-star scale.
const MaxRating = 5.0

// Bucket is one row of the star distribution.
type Bucket struct {
	Star       int     `json:"star"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary is the aggregate shown at the top of the rating list.
type Summary struct {
	Average      float64  `json:"average"`
	Total        int      `json:"total"`
	Distribution []Bucket `json:"distribution"` // stars 5 down to 1
}

// Summarize aggregates ratings. Each rating counts toward the bucket of its
// whole-star part, so 4.5 lands in 4.
func Summarize(ratings []model.Rating) Summary {
	s := Summary{Total: len(ratings)}
	var sum float64
	for _, r := range ratings {
		sum += r.Rating
	}
	if s.Total > 0 {
		s.Average = math.Round(sum/float64(s.Total)*100) / 100
	}
	for star := 5; star >= 1; star-- {
		b := Bucket{Star: star}
		for _, r := range ratings {
			if int(math.Floor(r.Rating)) == star {
				b.Count++
			}
		}
		if s.Total > 0 {
			b.Percentage = float64(b.Count) / float64(s.Total) * 100
		}
		s.Distribution = append(s.Distribution, b)
	}
	return s
}

// StarCounts describes how a rating is drawn on the five-star row.
type StarCounts struct {
	Full  int  `json:"full"`
	Half  bool `json:"half"`
	Empty int  `json:"empty"`
}

// Stars splits r into full, half and empty stars. A fractional part of at
// least .5 draws a half star.
func Stars(r float64) StarCounts {
	r = math.Max(0, math.Min(MaxRating, r))
	full := int(math.Floor(r))
	half := r-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	return StarCounts{Full: full, Half: half, Empty: empty}
}

// Input is a review submitted for a post.
type Input struct {
	Rating      float64 `json:"rating"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      int     `json:"budget"`
	TimeMinutes int     `json:"timeMinutes"`
	Texture     string  `json:"texture"`
	Temperature string  `json:"temperature"`
	GoodPoints  string  `json:"goodPoints"`
	BadPoints   string  `json:"badPoints"`
}

// Accepted texture and temperature answers.
var (
	TextureOptions     = []string{"かため", "やわらかめ", "もちもち"}
	TemperatureOptions = []string{"熱すぎる", "ぬるすぎる", "熱め", "ぬるめ"}
)

var (
	ErrNoRating      = errors.New("rating is required")
	ErrRatingInvalid = errors.New("rating must be a multiple of 0.5 between 0.5 and 5")
)

// Validate checks the star value. Free-text fields are not restricted.
func (in Input) Validate() error {
	if in.Rating == 0 {
		return ErrNoRating
	}
	if in.Rating < 0.5 || in.Rating > MaxRating || math.Mod(in.Rating*2, 1) != 0 {
		return ErrRatingInvalid
	}
	return nil
}

// ToRating converts the input into a record owned by the given user.
func (in Input) ToRating(postID, userID, userName, avatar string) model.Rating {
	return model.Rating{
		PostID:      postID,
		UserID:      userID,
		UserName:    userName,
		UserAvatar:  avatar,
		Rating:      in.Rating,
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		TimeMinutes: in.TimeMinutes,
		Texture:     in.Texture,
		Temperature: in.Temperature,
		GoodPoints:  in.GoodPoints,
		BadPoints:   in.BadPoints,
	}
}
