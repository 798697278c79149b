package catalog

import "github.com/bryan-buckman/foodmood/internal/model"

// BudgetSuggestions returns the static restaurant and recipe suggestions.
func BudgetSuggestions() []model.BudgetSuggestion {
	return []model.BudgetSuggestion{
		{
			ID:          "r1",
			Type:        model.TypeRestaurant,
			Title:       "麺屋 幸せ - 豚骨ラーメンセット",
			TotalBudget: 1200,
			MenuItems: []model.MenuItem{
				{Name: "特製豚骨ラーメン", Price: 900, Description: "濃厚スープが自慢の一杯", Category: "メイン"},
				{Name: "餃子（6個）", Price: 300, Description: "パリッとジューシー", Category: "サイド"},
			},
			ImageURL: "https://images.unsplash.com/photo-1697652974652-a2336106043b?w=1080",
			Location: "東京都渋谷区",
			Tips:     "ランチタイムは大盛り無料サービスあり！",
		},
		{
			ID:          "r2",
			Type:        model.TypeRestaurant,
			Title:       "カフェ ムーン - ティータイムセット",
			TotalBudget: 1500,
			MenuItems: []model.MenuItem{
				{Name: "ティラミス", Price: 800, Description: "ふわふわの自家製ティラミス", Category: "デザート"},
				{Name: "カフェラテ", Price: 700, Description: "バリスタが淹れる本格ラテ", Category: "ドリンク"},
			},
			ImageURL: "https://images.unsplash.com/photo-1662500663022-f556e149a5ec?w=1080",
			Location: "東京都港区表参道",
			Tips:     "Wi-Fi完備でゆっくり過ごせます",
		},
		{
			ID:          "r3",
			Type:        model.TypeRestaurant,
			Title:       "韓国食堂 ソウル - ランチセット",
			TotalBudget: 1800,
			MenuItems: []model.MenuItem{
				{Name: "プルコギ定食", Price: 1200, Description: "甘辛いタレが食欲そそる", Category: "メイン"},
				{Name: "チヂミ（ハーフ）", Price: 400, Description: "もちもち食感", Category: "サイド"},
				{Name: "マッコリ（グラス）", Price: 200, Description: "お食事と相性抜群", Category: "ドリンク"},
			},
			ImageURL: "https://images.unsplash.com/photo-1498654896293-37aacf113fd9?w=1080",
			Location: "東京都新大久保",
			Tips:     "ランチタイムはキムチ食べ放題！",
		},
		{
			ID:          "rec1",
			Type:        model.TypeRecipe,
			Title:       "簡単カルボナーラの材料",
			TotalBudget: 500,
			ShoppingItems: []model.ShoppingItem{
				{Name: "スパゲッティ", Price: 150, Quantity: "200g", Category: "麺類"},
				{Name: "ベーコン", Price: 120, Quantity: "80g", Category: "肉類"},
				{Name: "卵", Price: 80, Quantity: "2個", Category: "卵・乳製品"},
				{Name: "粉チーズ", Price: 100, Quantity: "30g", Category: "調味料"},
				{Name: "にんにく", Price: 50, Quantity: "1片", Category: "野菜"},
			},
			ImageURL: "https://images.unsplash.com/photo-1739417083034-4e9118f487be?w=1080",
			Tips:     "調理時間20分！生クリーム不要で簡単に作れます",
		},
		{
			ID:          "rec2",
			Type:        model.TypeRecipe,
			Title:       "ヘルシーサラダボウルの材料",
			TotalBudget: 600,
			ShoppingItems: []model.ShoppingItem{
				{Name: "アボカド", Price: 180, Quantity: "1個", Category: "野菜"},
				{Name: "サラダチキン", Price: 200, Quantity: "1パック", Category: "肉類"},
				{Name: "ミニトマト", Price: 120, Quantity: "1パック", Category: "野菜"},
				{Name: "レタス", Price: 80, Quantity: "1/2玉", Category: "野菜"},
				{Name: "オリーブオイル", Price: 20, Quantity: "大さじ1", Category: "調味料"},
			},
			ImageURL: "https://images.unsplash.com/photo-1649531794884-b8bb1de72e68?w=1080",
			Tips:     "調理時間15分！栄養満点で満腹感もあります",
		},
		{
			ID:          "rec3",
			Type:        model.TypeRecipe,
			Title:       "手作りハンバーガーの材料",
			TotalBudget: 400,
			ShoppingItems: []model.ShoppingItem{
				{Name: "バンズ", Price: 100, Quantity: "2個", Category: "パン類"},
				{Name: "牛ひき肉", Price: 150, Quantity: "150g", Category: "肉類"},
				{Name: "レタス", Price: 40, Quantity: "2枚", Category: "野菜"},
				{Name: "トマト", Price: 60, Quantity: "1/2個", Category: "野菜"},
				{Name: "チーズ", Price: 50, Quantity: "2枚", Category: "卵・乳製品"},
			},
			ImageURL: "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=1080",
			Tips:     "調理時間15分！子供も大喜びの手作りバーガー",
		},
	}
}
