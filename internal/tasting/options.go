package tasting

// tableKey addresses one fixed option list.
type tableKey struct {
	cat   Category
	color Color
}

// FixedTable maps (category, color) to the author-curated option list.
// It is built once and only read afterwards.
type FixedTable struct {
	lists map[tableKey][]string
}

// NewFixedTable builds a table from per-color option lists. A nil list for a
// color means the category has no fixed options for that color.
func NewFixedTable(entries map[Category]ColorOptions) FixedTable {
	t := FixedTable{lists: make(map[tableKey][]string, len(entries)*2)}
	for cat, e := range entries {
		if len(e.White) > 0 {
			t.lists[tableKey{cat, ColorWhite}] = Dedup(e.White)
		}
		if len(e.Red) > 0 {
			t.lists[tableKey{cat, ColorRed}] = Dedup(e.Red)
		}
	}
	return t
}

// Lookup returns a copy of the fixed options for cat and color, or nil.
func (t FixedTable) Lookup(cat Category, c Color) []string {
	return cloneStrings(t.lists[tableKey{cat, c}])
}

// Has reports whether a non-empty fixed list exists for cat and color.
func (t FixedTable) Has(cat Category, c Color) bool {
	return len(t.lists[tableKey{cat, c}]) > 0
}

// ColorOptions holds the option lists of one category per wine color.
type ColorOptions struct {
	White []string
	Red   []string
}

// both uses the same labels for white and red, each color with its own
// slice.
func both(opts ...string) ColorOptions {
	return ColorOptions{White: cloneStrings(opts), Red: cloneStrings(opts)}
}

// DefaultFixedTable returns the option table of the sommelier second-round
// tasting sheet. The spice/aromatic/chemical axis and decanting have no
// fixed list and resolve from the dataset.
func DefaultFixedTable() FixedTable {
	return NewFixedTable(defaultOptions)
}

var defaultOptions = map[Category]ColorOptions{
	Clarity:    both("澄んだ", "やや濁った", "濁った"),
	Brilliance: both("輝きのある", "艶のある", "落ち着いた", "モヤがかかった"),
	ColorTone: {
		White: []string{"グリーンがかった", "レモンイエロー", "イエロー", "黄金色がかった", "トパーズ", "アンバー"},
		Red:   []string{"紫がかった", "ルビー", "ガーネット", "レンガ色", "マホガニー", "オレンジがかった", "黒みを帯びた"},
	},
	Intensity: {
		White: []string{"無色に近い", "淡い", "やや濃い", "濃い"},
		Red:   []string{"明るい", "やや明るい", "やや濃い", "濃い", "非常に濃い"},
	},
	Viscosity: both("さらっとした", "やや軽い", "やや強い", "強い"),
	AppearanceImpression: {
		White: []string{"若い", "若々しい", "熟成した", "やや熟成した", "酸化熟成のニュアンスが見られる", "軽い", "濃縮感がある", "成熟度が高い"},
		Red:   []string{"若い", "若々しい", "熟成した", "やや熟成した", "酸化熟成のニュアンスが見られる", "軽い", "濃縮感がある", "成熟度が高い"},
	},
	AromaFirstImpression: both("閉じている", "控えめ", "しっかりと感じられる", "力強い", "華やかな", "開いている", "チャーミングな", "フレッシュな"),
	AromaFeatures: {
		White: []string{
			"柑橘類", "レモン", "グレープフルーツ", "青リンゴ", "リンゴ", "洋梨", "白桃", "花梨",
			"アプリコット", "パイナップル", "マンゴー", "ライチ", "パッションフルーツ", "メロン",
			"スイカズラ", "アカシア", "菩提樹", "ジャスミン", "白バラ",
			"ミント", "青草", "ハーブ", "ヴェルヴェンヌ", "カモミール", "藁", "シダ",
		},
		Red: []string{
			"イチゴ", "ラズベリー", "ブルーベリー", "ブラックベリー", "カシス", "ブラックチェリー",
			"ダークチェリー", "プルーン", "干しプラム", "イチジク",
			"スミレ", "バラ", "牡丹", "ドライフラワー",
			"杉", "ピーマン", "ミント", "ユーカリ", "紅茶", "タバコ", "腐葉土", "キノコ", "土",
		},
	},
	AromaImpression: {
		White: []string{"若々しい", "還元的", "第一アロマが強い", "第二アロマが強い", "木樽からのニュアンス", "熟成による変化", "ニュートラル", "アロマティック"},
		Red:   []string{"若々しい", "還元的", "第一アロマが強い", "第二アロマが強い", "木樽からのニュアンス", "熟成による変化", "ニュートラル", "ワイルド"},
	},
	Attack: {
		White: []string{"軽い", "やや軽い", "やや強い", "強い"},
		Red:   []string{"軽い", "やや軽い", "やや強い", "強い", "インパクトのある"},
	},
	Sweetness: {
		White: []string{"ドライ", "弱い", "まろやかな", "豊かな", "残糖がある", "甘い", "極甘口"},
		Red:   []string{"ドライ", "まろやかな", "豊かな", "残糖がある"},
	},
	Acidity: {
		White: []string{"シャープな", "爽やかな", "生き生きとした", "なめらかな", "キメ細かい", "やさしい", "穏やかな", "力強い"},
		Red:   []string{"堅い", "シャープな", "爽やかな", "生き生きとした", "しっかりとした", "なめらかな", "やさしい", "穏やかな", "力強い"},
	},
	Bitterness: {
		White: []string{"控えめ", "穏やかな", "心地良い", "旨味をともなった", "強い"},
	},
	Tannin: {
		Red: []string{"少ない", "サラサラとした", "緻密", "力強い", "収斂性のある", "粗い", "溶け込んだ", "ビロードのような", "シルキーな"},
	},
	Balance: {
		White: []string{"スリムな", "軽快な", "ドライな", "まろやかな", "ふくよかな", "豊満な", "厚みのある", "力強い"},
		Red:   []string{"スリムな", "軽快な", "しなやかな", "まろやかな", "流れるような", "骨格のしっかりした", "バランスの良い", "厚みのある", "力強い"},
	},
	Alcohol: both("弱め", "やや弱め", "中程度", "やや強め", "強め", "熱さを感じる"),
	Finish:  both("短い", "やや短い", "やや長い", "長い"),
	Evaluation: {
		White: []string{
			"シンプル、フレッシュ感を楽しむ",
			"成長途中、今飲んでも楽しめる",
			"熟成のピーク",
			"熟成のピークを過ぎた",
			"濃縮した、豊かなスタイル",
		},
		Red: []string{
			"シンプル、フレッシュ感を楽しむ",
			"成長途中、今飲んでも楽しめる",
			"熟成のピーク",
			"熟成のピークを過ぎた",
			"濃縮した、豊かなスタイル",
		},
	},
	Temperature: {
		White: []string{"6度未満", "7〜10度", "11〜14度", "15〜18度"},
		Red:   []string{"10〜13度", "14〜16度", "17〜20度", "21度以上"},
	},
	Glassware: both("小ぶり", "中庸", "大ぶり"),
}
