package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/winequiz/internal/tasting"
)

func TestBuild(t *testing.T) {
	ds, err := Build("", []RawRecord{
		whiteSplitRecord(),
		{"id": "red", "isRed": true, "answers": map[string]any{
			"香り:特徴": []any{"カシス"},
			"デカンタージュ": map[string]any{"correct": []any{"事前（30分前）"}, "alsoAccept": []any{"必要なし"}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Len(t, ds.Whites(), 1)
	assert.Len(t, ds.Reds(), 1)

	w, ok := ds.Lookup("red")
	require.True(t, ok)
	assert.True(t, w.IsRed)
	_, ok = ds.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"リンゴ", "アカシア", "カシス"}, ds.Pool().Options(tasting.AromaFeatures))
	assert.Equal(t, []string{"事前（30分前）", "必要なし"}, ds.Pool().Options(tasting.Decanting))

	report := ds.Report()
	require.Len(t, report.Drops, 1)
	assert.Equal(t, "グラス", report.Drops[0].Category)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		version string
		raws    []RawRecord
		want    error
	}{
		{"empty", "", nil, ErrEmpty},
		{"missing id", "", []RawRecord{{"grape": "x"}}, ErrMissingID},
		{"duplicate id", "", []RawRecord{{"id": "a"}, {"id": "a"}}, ErrDuplicateID},
		{"bad version", "two", []RawRecord{{"id": "a"}}, ErrUnsupportedSchema},
		{"future version", "v3.0.0", []RawRecord{{"id": "a"}}, ErrUnsupportedSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.version, tt.raws)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestBuild_LegacyKeysInMergedSchemaWarn(t *testing.T) {
	ds, err := Build("v2.1.0", []RawRecord{whiteSplitRecord()})
	require.NoError(t, err)

	report := ds.Report()
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "white-split")

	// Inferred and v1 datasets merge silently.
	for _, v := range []string{"", "v1"} {
		ds, err := Build(v, []RawRecord{whiteSplitRecord()})
		require.NoError(t, err)
		assert.Empty(t, ds.Report().Warnings)
	}
}

func TestDataset_WinesIsCopy(t *testing.T) {
	ds, err := Build("", []RawRecord{{"id": "a"}, {"id": "b"}})
	require.NoError(t, err)

	wines := ds.Wines()
	wines[0].ID = "changed"
	assert.Equal(t, "a", ds.At(0).ID)
}
