package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/winequiz/internal/tasting"
)

// RawRecord is one untyped wine record as read from the dataset.
type RawRecord map[string]any

// Drop records an answer entry (or other record part) that normalization
// discarded.
type Drop struct {
	WineID   string
	Category string // empty when the drop is not tied to a category
	Reason   string
}

func (d Drop) String() string {
	if d.Category == "" {
		return fmt.Sprintf("%s: %s", d.WineID, d.Reason)
	}
	return fmt.Sprintf("%s[%s]: %s", d.WineID, d.Category, d.Reason)
}

// Normalize converts a raw record into a WineProfile. Unrecognized answer
// shapes are dropped and returned as Drops; raw is never modified.
func Normalize(raw RawRecord) (tasting.WineProfile, []Drop) {
	w := tasting.WineProfile{
		ID:          asString(raw["id"]),
		Grape:       asString(raw["grape"]),
		Region:      asString(raw["region"]),
		VintageHint: asString(raw["vintageHint"]),
		IsRed:       truthy(raw["isRed"]),
		Notes:       asString(raw["notes"]),
		Summary:     asString(raw["summary"]),
	}

	var drops []Drop
	answers := make(map[tasting.Category]tasting.AnswerDetail)

	switch rawAnswers := raw["answers"].(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(rawAnswers))
		for k := range rawAnswers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			dec := DecodeAnswer(rawAnswers[key])
			if dec.Shape == ShapeDropped {
				drops = append(drops, Drop{WineID: w.ID, Category: key, Reason: dec.Reason})
				continue
			}
			answers[tasting.Category(key)] = dec.Detail
		}
	default:
		drops = append(drops, Drop{WineID: w.ID, Reason: fmt.Sprintf("answers is %T, not an object", rawAnswers)})
	}

	w.Answers = ReconcileAromaKeys(answers)

	confusions, cdrops := decodeConfusions(w.ID, raw["confusions"])
	w.Confusions = confusions
	drops = append(drops, cdrops...)

	return w, drops
}

// ReconcileAromaKeys merges every legacy aroma-feature key present in
// answers into the canonical aroma-features category and removes the legacy
// keys. An existing canonical entry is merged first. The input map is not
// modified. Running it on its own output returns an equal map.
func ReconcileAromaKeys(answers map[tasting.Category]tasting.AnswerDetail) map[tasting.Category]tasting.AnswerDetail {
	out := make(map[tasting.Category]tasting.AnswerDetail, len(answers))
	for cat, d := range answers {
		out[cat] = d.Clone()
	}

	var parts []tasting.AnswerDetail
	if d, ok := out[tasting.AromaFeatures]; ok {
		parts = append(parts, d)
	}
	for _, key := range tasting.LegacyAromaKeys() {
		d, ok := out[key]
		if !ok {
			continue
		}
		parts = append(parts, d)
		delete(out, key)
	}
	if len(parts) == 0 {
		return out
	}

	var merged tasting.AnswerDetail
	var notes, tips []string
	for _, p := range parts {
		merged.Correct = append(merged.Correct, p.Correct...)
		merged.AlsoAccept = append(merged.AlsoAccept, p.AlsoAccept...)
		if p.Note != "" {
			notes = append(notes, p.Note)
		}
		if p.ExamTip != "" {
			tips = append(tips, p.ExamTip)
		}
	}
	merged.Correct = dedupOrNil(merged.Correct)
	merged.AlsoAccept = dedupOrNil(merged.AlsoAccept)
	merged.Note = strings.Join(dedupOrNil(notes), "\n")
	merged.ExamTip = strings.Join(dedupOrNil(tips), "\n")

	out[tasting.AromaFeatures] = merged
	return out
}

// legacyKeysIn returns the legacy aroma keys present in a raw answers map.
func legacyKeysIn(raw RawRecord) []string {
	answers, ok := raw["answers"].(map[string]any)
	if !ok {
		return nil
	}
	var found []string
	for _, key := range tasting.LegacyAromaKeys() {
		if _, ok := answers[string(key)]; ok {
			found = append(found, string(key))
		}
	}
	return found
}

func decodeConfusions(wineID string, v any) ([]tasting.Confusion, []Drop) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, []Drop{{WineID: wineID, Reason: fmt.Sprintf("confusions is %T, not a list", v)}}
	}

	var out []tasting.Confusion
	var drops []Drop
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			drops = append(drops, Drop{WineID: wineID, Reason: fmt.Sprintf("confusion #%d is %T, not an object", i+1, item)})
			continue
		}
		with := asString(m["with"])
		if with == "" {
			drops = append(drops, Drop{WineID: wineID, Reason: fmt.Sprintf("confusion #%d has no \"with\"", i+1)})
			continue
		}
		out = append(out, tasting.Confusion{
			With:     with,
			Cues:     stringsOrSingle(m["cues"]),
			Pitfalls: stringsOrSingle(m["pitfalls"]),
		})
	}
	return out, drops
}
