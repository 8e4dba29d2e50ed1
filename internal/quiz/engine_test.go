package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/tasting"
)

func TestNewEngine_RejectsEmpty(t *testing.T) {
	_, err := NewEngine(nil, tasting.DefaultFixedTable())
	assert.True(t, errors.Is(err, dataset.ErrEmpty))
}

func TestBoard_HidesByColor(t *testing.T) {
	e := testEngine(t)

	white, _ := e.Dataset().Lookup("white")
	cats := categories(e.Board(white))
	assert.Contains(t, cats, tasting.Bitterness)
	assert.NotContains(t, cats, tasting.Tannin)

	red, _ := e.Dataset().Lookup("red")
	cats = categories(e.Board(red))
	assert.Contains(t, cats, tasting.Tannin)
	assert.NotContains(t, cats, tasting.Bitterness)
}

func TestBoard_FollowsCategoryOrder(t *testing.T) {
	e := testEngine(t)
	white, _ := e.Dataset().Lookup("white")

	order := map[tasting.Category]int{}
	for i, c := range tasting.Order() {
		order[c] = i
	}
	cats := categories(e.Board(white))
	require.NotEmpty(t, cats)
	for i := 1; i < len(cats); i++ {
		assert.Less(t, order[cats[i-1]], order[cats[i]])
	}
	assert.Equal(t, tasting.Clarity, cats[0])
}

func TestBoard_AppliesCountRule(t *testing.T) {
	e := testEngine(t)
	white, _ := e.Dataset().Lookup("white")

	for _, v := range e.Board(white) {
		if v.Category != tasting.ColorTone {
			continue
		}
		assert.Equal(t, []string{"レモンイエロー", "イエロー"}, v.Detail.Correct)
		assert.Equal(t, 2, v.Hint)
		return
	}
	t.Fatal("color tone not on board")
}

func TestBoard_PoolFallback(t *testing.T) {
	e := testEngine(t)
	red, _ := e.Dataset().Lookup("red")

	for _, v := range e.Board(red) {
		if v.Category == tasting.Decanting {
			assert.Equal(t, []string{"必要なし"}, v.Options)
		}
		if v.Category == tasting.AromaSpice {
			// Pool options come from every wine, whatever its color.
			assert.Equal(t, []string{"バター", "ヘーゼルナッツ"}, v.Options)
			assert.Empty(t, v.Detail.Correct)
		}
	}
}

func TestCategoryView_HasOption(t *testing.T) {
	v := CategoryView{Options: []string{"a", "b"}}
	assert.True(t, v.HasOption("b"))
	assert.False(t, v.HasOption("c"))
}

func TestBoard_SuppressesCategoriesWithNothingToShow(t *testing.T) {
	table := tasting.NewFixedTable(map[tasting.Category]tasting.ColorOptions{
		tasting.Clarity: {White: []string{"澄んだ", "濁った"}, Red: []string{"澄んだ", "濁った"}},
	})
	e, err := NewEngine(testDataset(t), table)
	require.NoError(t, err)

	for _, id := range []string{"white", "red"} {
		w, ok := e.Dataset().Lookup(id)
		require.True(t, ok)
		cats := categories(e.Board(w))

		assert.NotContains(t, cats, tasting.Glassware, id)
		assert.NotContains(t, cats, tasting.Evaluation, id)
		assert.Contains(t, cats, tasting.Clarity, id)
		// No fixed list, but the pool has labels from the dataset.
		assert.Contains(t, cats, tasting.AromaSpice, id)
		assert.Contains(t, cats, tasting.Decanting, id)
	}

	red, _ := e.Dataset().Lookup("red")
	for _, v := range e.Board(red) {
		require.NotEmpty(t, v.Options, v.Category)
	}
}
