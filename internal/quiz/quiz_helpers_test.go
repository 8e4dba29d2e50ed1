package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/tasting"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Build("", []dataset.RawRecord{
		{
			"id": "white", "grape": "シャルドネ", "region": "ブルゴーニュ", "isRed": false,
			"answers": map[string]any{
				"色調":   []any{"レモンイエロー", "イエロー", "黄金色がかった"},
				"清澄度":  []any{"澄んだ"},
				"味わい:苦味": map[string]any{"correct": []any{"控えめ"}, "alsoAccept": []any{"穏やか"}},
				"香り:特徴/香辛料-芳香-化学物": []any{"バター", "ヘーゼルナッツ"},
			},
		},
		{
			"id": "red", "grape": "ピノ・ノワール", "region": "ブルゴーニュ", "isRed": true,
			"answers": map[string]any{
				"色調":      []any{"ルビー", "ガーネット"},
				"味わい:タンニン分": []any{"緻密"},
				"デカンタージュ": []any{"必要なし"},
			},
		},
	})
	require.NoError(t, err)
	return ds
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testDataset(t), tasting.DefaultFixedTable())
	require.NoError(t, err)
	return e
}

func testSession(t *testing.T, wineID string) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	s, err := NewSession(testEngine(t), cfg)
	require.NoError(t, err)
	require.True(t, s.SelectWine(wineID))
	return s
}

func categories(views []CategoryView) []tasting.Category {
	out := make([]tasting.Category, len(views))
	for i, v := range views {
		out[i] = v.Category
	}
	return out
}
