// Package catalog holds the built-in sample content: posts, ratings and
// budget suggestions. It seeds empty stores and backs offline views.
package catalog

import (
	"time"

	"github.com/bryan-buckman/foodmood/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Posts returns a fresh copy of the sample posts in display order.
func Posts() []model.Post {
	return []model.Post{
		{
			ID:           "1",
			Type:         model.TypeRestaurant,
			Title:        "麺屋 幸せ - 特製豚骨ラーメン",
			Description:  "濃厚な豚骨スープにもちもちの太麺がよく絡む。ランチは大盛り無料。",
			ImageURL:     "https://images.unsplash.com/photo-1697652974652-a2336106043b?w=1080",
			Author:       "ラーメン探検家",
			AuthorAvatar: "🍜",
			Rating:       4.5,
			IsExpert:     true,
			ExpertLevel:  3,
			Situation:    []model.Situation{model.SituationLunch, model.SituationDinner},
			Genre:        []model.RestaurantGenre{model.GenreRamen},
			Priority:     []model.Priority{model.PriorityChewyNoodles, model.PriorityRichFlavor},
			TimeMinutes:  30,
			Budget:       1200,
			Location:     "丸の内",
			Tags:         []string{"ラーメン", "豚骨", "大盛り無料"},
			Likes:        128,
			Comments:     14,
			CreatedAt:    date(2024, time.December, 1),
			ReportDetails: &model.ReportDetails{
				DishDetails: []model.LabeledValue{
					{Label: "麺", Value: "太麺・もちもち"},
					{Label: "スープ", Value: "濃厚豚骨"},
				},
				ProsPoints: []string{"スープの濃さ", "麺の食感"},
				ConsPoints: []string{"昼は行列ができる"},
			},
		},
		{
			ID:             "2",
			Type:           model.TypeRestaurant,
			Title:          "カフェ ムーン - 自家製ティラミス",
			Description:    "ふわふわのティラミスと本格ラテ。ゆったりしたソファ席でデートにもおすすめ。",
			ImageURL:       "https://images.unsplash.com/photo-1662500663022-f556e149a5ec?w=1080",
			Author:         "カフェ巡りみく",
			AuthorAvatar:   "☕",
			Rating:         4.2,
			Situation:      []model.Situation{model.SituationDate, model.SituationSenior},
			Genre:          []model.RestaurantGenre{model.GenreCafe},
			ShopPreference: []model.ShopPreference{model.ShopRelaxing},
			TimeMinutes:    60,
			Budget:         1500,
			Location:       "麻布",
			Tags:           []string{"カフェ", "スイーツ", "Wi-Fi"},
			Likes:          96,
			Comments:       8,
			CreatedAt:      date(2024, time.December, 3),
			ReportDetails: &model.ReportDetails{
				ProsPoints: []string{"静かで長居できる"},
				ConsPoints: []string{"席数が少ない"},
			},
		},
		{
			ID:             "3",
			Type:           model.TypeRestaurant,
			Title:          "韓国食堂 ソウル - プルコギ定食",
			Description:    "甘辛いプルコギとチヂミのセット。キッズメニューもあり家族連れに人気。",
			ImageURL:       "https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=1080",
			Author:         "グルメ花子",
			AuthorAvatar:   "🍽️",
			Rating:         3.8,
			Situation:      []model.Situation{model.SituationFamily, model.SituationLunch},
			Genre:          []model.RestaurantGenre{model.GenreKorean},
			Priority:       []model.Priority{model.PrioritySpicy},
			ShopPreference: []model.ShopPreference{model.ShopKidFriendly},
			TimeMinutes:    45,
			Budget:         1800,
			Location:       "ソラマチ",
			Tags:           []string{"韓国料理", "定食", "子連れOK"},
			Likes:          54,
			Comments:       5,
			CreatedAt:      date(2024, time.December, 5),
		},
		{
			ID:           "4",
			Type:         model.TypeRestaurant,
			Title:        "上海厨房 - 麻婆豆腐セット",
			Description:  "花椒がしっかり効いた本格四川の麻婆豆腐。辛さは調整可能。",
			ImageURL:     "https://images.unsplash.com/photo-1582452919408-aca8b8b0a0b1?w=1080",
			Author:       "辛党けんじ",
			AuthorAvatar: "🌶️",
			Rating:       4.0,
			Situation:    []model.Situation{model.SituationDinner},
			Genre:        []model.RestaurantGenre{model.GenreChinese},
			Priority:     []model.Priority{model.PrioritySpicy, model.PriorityRichFlavor},
			TimeMinutes:  40,
			Budget:       2500,
			Location:     "丸の内",
			Tags:         []string{"中華", "四川", "激辛"},
			Likes:        77,
			Comments:     9,
			CreatedAt:    date(2024, time.December, 6),
		},
		{
			ID:           "5",
			Type:         model.TypeRecipe,
			Title:        "簡単カルボナーラ",
			Description:  "生クリームなしで作れる濃厚カルボナーラ。卵とチーズだけで本格的な味に。",
			ImageURL:     "https://images.unsplash.com/photo-1739417083034-4e9118f487be?w=1080",
			Author:       "おうちシェフ",
			AuthorAvatar: "👨‍🍳",
			Rating:       4.6,
			IsExpert:     true,
			ExpertLevel:  5,
			Category:     []model.RecipeCategory{model.CategoryLunch, model.CategoryDinner},
			RecipeGenre:  []model.RecipeGenre{model.RecipeItalian, model.RecipeWestern},
			TimeMinutes:  20,
			Budget:       500,
			Tags:         []string{"パスタ", "時短", "卵"},
			Likes:        210,
			Comments:     31,
			CreatedAt:    date(2024, time.November, 28),
			ReportDetails: &model.ReportDetails{
				Ingredients: []model.LabeledValue{
					{Label: "スパゲッティ", Value: "200g"},
					{Label: "ベーコン", Value: "80g"},
					{Label: "卵", Value: "2個"},
					{Label: "粉チーズ", Value: "30g"},
				},
				CookingTips: []string{"火を止めてから卵液を加える"},
				Difficulty:  "かんたん",
			},
		},
		{
			ID:               "6",
			Type:             model.TypeRecipe,
			Title:            "夏野菜のレモンマリネ",
			Description:      "トマトとズッキーニをレモンでさっぱりと。作り置きにも便利な副菜。",
			ImageURL:         "https://images.unsplash.com/photo-1649531794884-b8bb1de72e68?w=1080",
			Author:           "野菜ソムリエあや",
			AuthorAvatar:     "🥗",
			Rating:           4.1,
			Category:         []model.RecipeCategory{model.CategoryBreakfast, model.CategorySnack},
			RecipeGenre:      []model.RecipeGenre{model.RecipeWestern},
			RecipePreference: []model.RecipePreference{model.PreferenceLemon, model.PreferenceSummerVegetables},
			TimeMinutes:      15,
			Budget:           600,
			Tags:             []string{"サラダ", "作り置き", "ヘルシー"},
			Likes:            88,
			Comments:         6,
			CreatedAt:        date(2024, time.December, 2),
		},
		{
			ID:               "7",
			Type:             model.TypeRecipe,
			Title:            "スパイスチキンカレー",
			Description:      "市販のルーにクミンとガラムマサラを足すだけで本格派のチキンカレー。",
			ImageURL:         "https://images.unsplash.com/photo-1707448829764-9474458021ed?w=1080",
			Author:           "カレー研究家たけし",
			AuthorAvatar:     "🍛",
			Rating:           4.4,
			Category:         []model.RecipeCategory{model.CategoryDinner},
			RecipeGenre:      []model.RecipeGenre{model.RecipeJapanese},
			RecipePreference: []model.RecipePreference{model.PreferenceCurry},
			TimeMinutes:      60,
			Budget:           800,
			Tags:             []string{"カレー", "スパイス", "鶏肉"},
			Likes:            143,
			Comments:         19,
			CreatedAt:        date(2024, time.December, 4),
			ReportDetails: &model.ReportDetails{
				CookingTips: []string{"玉ねぎは飴色になるまで炒める"},
				Difficulty:  "ふつう",
			},
		},
		{
			ID:           "8",
			Type:         model.TypeRecipe,
			Title:        "本格麻婆豆腐",
			Description:  "豆板醤と甜麺醤で作る家庭の麻婆豆腐。ご飯が止まらない。",
			ImageURL:     "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=1080",
			Author:       "辛党けんじ",
			AuthorAvatar: "🌶️",
			Rating:       3.9,
			Category:     []model.RecipeCategory{model.CategoryDinner},
			RecipeGenre:  []model.RecipeGenre{model.RecipeChinese},
			TimeMinutes:  25,
			Budget:       700,
			Tags:         []string{"中華", "豆腐", "ピリ辛"},
			Likes:        65,
			Comments:     4,
			CreatedAt:    date(2024, time.December, 7),
		},
		{
			ID:           "9",
			Type:         model.TypeFoodWalk,
			Title:        "ソラマチ食べ歩きコース",
			Description:  "たい焼きから抹茶ソフトまで、スカイツリー周辺の食べ歩きを半日で。",
			ImageURL:     "https://images.unsplash.com/photo-1554797589-7241bb691973?w=1080",
			Author:       "散歩グルメゆう",
			AuthorAvatar: "🚶",
			Rating:       4.3,
			TimeMinutes:  180,
			Budget:       2000,
			Location:     "ソラマチ",
			Tags:         []string{"食べ歩き", "スイーツ", "下町"},
			Likes:        102,
			Comments:     12,
			CreatedAt:    date(2024, time.December, 8),
		},
		{
			ID:           "10",
			Type:         model.TypeSightseeing,
			Title:        "麻布十番 商店街めぐり",
			Description:  "老舗の豆菓子屋や鯛焼き屋を巡りながら、坂の多い街並みを散策。",
			ImageURL:     "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=1080",
			Author:       "散歩グルメゆう",
			AuthorAvatar: "🚶",
			Rating:       4.0,
			TimeMinutes:  120,
			Budget:       3000,
			Location:     "麻布",
			Tags:         []string{"観光", "商店街", "老舗"},
			Likes:        47,
			Comments:     3,
			CreatedAt:    date(2024, time.December, 9),
		},
	}
}
