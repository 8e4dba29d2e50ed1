package tasting

// Category is a fixed judgment axis of the tasting form.
type Category string

// Appearance (外観).
const (
	Clarity              Category = "清澄度"
	Brilliance           Category = "輝き"
	ColorTone            Category = "色調"
	Intensity            Category = "濃淡"
	Viscosity            Category = "粘性"
	AppearanceImpression Category = "外観の印象"
)

// Aroma (香り).
const (
	AromaFirstImpression Category = "香り:第一印象"
	AromaFeatures        Category = "香り:特徴/果実/花/植物"
	AromaSpice           Category = "香り:特徴/香辛料-芳香-化学物"
	AromaImpression      Category = "香りの印象"
)

// Palate (味わい).
const (
	Attack     Category = "味わい:アタック"
	Sweetness  Category = "味わい:甘み"
	Acidity    Category = "味わい:酸味"
	Bitterness Category = "味わい:苦味"
	Tannin     Category = "味わい:タンニン分"
	Balance    Category = "味わい:バランス"
	Alcohol    Category = "味わい:アルコール"
	Finish     Category = "味わい:余韻"
)

// Evaluation and service.
const (
	Evaluation  Category = "評価"
	Temperature Category = "適正温度"
	Glassware   Category = "グラス"
	Decanting   Category = "デカンタージュ"
)

// Legacy aroma-feature keys. White datasets split features into fruit,
// flower and plant; red datasets used a single combined key. All of them
// merge into AromaFeatures.
const (
	LegacyAromaFruit    Category = "香り:特徴/果実"
	LegacyAromaFlower   Category = "香り:特徴/花"
	LegacyAromaPlant    Category = "香り:特徴/植物"
	LegacyAromaCombined Category = "香り:特徴"
)

var order = []Category{
	Clarity, Brilliance, ColorTone, Intensity, Viscosity, AppearanceImpression,
	AromaFirstImpression, AromaFeatures, AromaSpice, AromaImpression,
	Attack, Sweetness, Acidity, Bitterness, Tannin, Balance, Alcohol, Finish,
	Evaluation, Temperature, Glassware, Decanting,
}

var legacyAromaKeys = []Category{
	LegacyAromaFruit,
	LegacyAromaFlower,
	LegacyAromaPlant,
	LegacyAromaCombined,
}

// Order returns the canonical display order of categories.
func Order() []Category {
	return cloneCategories(order)
}

// LegacyAromaKeys returns the legacy aroma-feature keys in merge order.
func LegacyAromaKeys() []Category {
	return cloneCategories(legacyAromaKeys)
}

// IsKnown reports whether cat is part of the canonical taxonomy.
func IsKnown(cat Category) bool {
	for _, c := range order {
		if c == cat {
			return true
		}
	}
	return false
}

// Section is a heading grouping categories on the tasting sheet.
type Section string

const (
	SectionAppearance Section = "外観"
	SectionAroma      Section = "香り"
	SectionPalate     Section = "味わい"
	SectionEvaluation Section = "評価"
	SectionService    Section = "サービス"
)

// SectionOf returns the sheet section a category belongs to.
func SectionOf(cat Category) Section {
	switch cat {
	case Clarity, Brilliance, ColorTone, Intensity, Viscosity, AppearanceImpression:
		return SectionAppearance
	case AromaFirstImpression, AromaFeatures, AromaSpice, AromaImpression:
		return SectionAroma
	case Attack, Sweetness, Acidity, Bitterness, Tannin, Balance, Alcohol, Finish:
		return SectionPalate
	case Evaluation:
		return SectionEvaluation
	default:
		return SectionService
	}
}

// HiddenForColor reports whether the category never applies to a color:
// tannin is not judged for white wines, bitterness not for red.
func HiddenForColor(cat Category, c Color) bool {
	switch {
	case cat == Tannin && c == ColorWhite:
		return true
	case cat == Bitterness && c == ColorRed:
		return true
	}
	return false
}

func cloneCategories(c []Category) []Category {
	out := make([]Category, len(c))
	copy(out, c)
	return out
}
