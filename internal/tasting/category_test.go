package tasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder(t *testing.T) {
	o := Order()
	assert.Len(t, o, 22)
	assert.Equal(t, Clarity, o[0])
	assert.Equal(t, Decanting, o[len(o)-1])
	assert.Contains(t, o, AromaFeatures)
	for _, legacy := range LegacyAromaKeys() {
		assert.NotContains(t, o, legacy)
	}

	o[0] = "changed"
	assert.Equal(t, Clarity, Order()[0])
}

func TestHiddenForColor(t *testing.T) {
	assert.True(t, HiddenForColor(Tannin, ColorWhite))
	assert.False(t, HiddenForColor(Tannin, ColorRed))
	assert.True(t, HiddenForColor(Bitterness, ColorRed))
	assert.False(t, HiddenForColor(Bitterness, ColorWhite))
	assert.False(t, HiddenForColor(ColorTone, ColorWhite))
}

func TestSectionOf(t *testing.T) {
	assert.Equal(t, SectionAppearance, SectionOf(Viscosity))
	assert.Equal(t, SectionAroma, SectionOf(AromaSpice))
	assert.Equal(t, SectionPalate, SectionOf(Tannin))
	assert.Equal(t, SectionEvaluation, SectionOf(Evaluation))
	assert.Equal(t, SectionService, SectionOf(Glassware))
}

func TestWineProfile_Label(t *testing.T) {
	w := WineProfile{Region: "ブルゴーニュ", Grape: "シャルドネ", VintageHint: "2019"}
	assert.Equal(t, "ブルゴーニュ｜シャルドネ（2019）", w.Label())
	w.VintageHint = ""
	assert.Equal(t, "ブルゴーニュ｜シャルドネ", w.Label())
}

func TestWineProfile_AnswerIsCopy(t *testing.T) {
	w := WineProfile{Answers: map[Category]AnswerDetail{Clarity: {Correct: []string{"澄んだ"}}}}
	d, ok := w.Answer(Clarity)
	assert.True(t, ok)
	d.Correct[0] = "changed"
	assert.Equal(t, "澄んだ", w.Answers[Clarity].Correct[0])

	_, ok = w.Answer(Tannin)
	assert.False(t, ok)
}
