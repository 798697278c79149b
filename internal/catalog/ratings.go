package catalog

import (
	"time"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// Ratings returns the sample reviews shown on every post detail.
func Ratings() []model.Rating {
	return []model.Rating{
		{
			ID:          "1",
			UserID:      "u1",
			UserName:    "料理好き太郎",
			UserAvatar:  "👨‍🍳",
			Rating:      4.5,
			CreatedAt:   date(2024, time.December, 1),
			GoodCount:   12,
			BadCount:    2,
			Title:       "期待以上の美味しさでした",
			Description: "卵がふわふわで、デミグラスソースの深いコクが絶品。",
			Budget:      1200,
			TimeMinutes: 30,
			Texture:     "やわらかめ",
			Temperature: "熱め",
			GoodPoints:  "オムライスの卵が本当にふわふわで、口の中でとろけます。",
			BadPoints:   "ランチタイムは混雑するので、予約をおすすめします。",
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800",
		},
		{
			ID:          "2",
			UserID:      "u2",
			UserName:    "グルメ花子",
			UserAvatar:  "🍽️",
			Rating:      5.0,
			CreatedAt:   date(2024, time.December, 3),
			GoodCount:   23,
			Title:       "最高のオムライス！",
			Description: "今まで食べたオムライスの中で一番美味しかったです。",
			Budget:      1500,
			TimeMinutes: 45,
			Texture:     "もちもち",
			Temperature: "熱め",
			GoodPoints:  "卵の焼き加減が完璧。",
			BadPoints:   "特にありません。",
			ImageURL:    "https://images.unsplash.com/photo-1576402187878-974f70c890a5?w=800",
		},
		{
			ID:          "3",
			UserID:      "u3",
			UserName:    "ラーメン探検家",
			UserAvatar:  "🍜",
			Rating:      4.0,
			CreatedAt:   date(2024, time.December, 5),
			GoodCount:   8,
			BadCount:    1,
			Title:       "美味しいけど少し高め",
			Description: "味は申し分ないですが、コスパを考えると少し高いかなという印象。",
			Budget:      1800,
			TimeMinutes: 50,
			Texture:     "やわらかめ",
			Temperature: "熱すぎる",
			GoodPoints:  "味のクオリティは高い。",
			BadPoints:   "価格が少し高め。",
		},
		{
			ID:          "4",
			UserID:      "u4",
			UserName:    "カフェ巡りみく",
			UserAvatar:  "☕",
			Rating:      4.5,
			CreatedAt:   date(2024, time.December, 6),
			GoodCount:   15,
			BadCount:    3,
			Title:       "インスタ映えする美しさ",
			Description: "見た目も味も素晴らしい。",
			Budget:      1400,
			TimeMinutes: 40,
			Texture:     "もちもち",
			Temperature: "ぬるめ",
			GoodPoints:  "プレゼンテーションが美しい。",
			BadPoints:   "提供まで少し時間がかかる。",
			ImageURL:    "https://images.unsplash.com/photo-1484723091739-30a097e8f929?w=800",
		},
		{
			ID:          "5",
			UserID:      "u5",
			UserName:    "おうちシェフ",
			UserAvatar:  "🍔",
			Rating:      3.5,
			CreatedAt:   date(2024, time.December, 7),
			GoodCount:   5,
			BadCount:    7,
			Title:       "普通のオムライス",
			Description: "可もなく不可もなく。",
			Budget:      1000,
			TimeMinutes: 25,
			Texture:     "かため",
			Temperature: "ぬるすぎる",
			GoodPoints:  "価格は比較的リーズナブル。",
			BadPoints:   "卵が少し固め。温度がぬるい。",
		},
	}
}
