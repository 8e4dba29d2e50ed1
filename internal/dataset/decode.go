package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/abhisek/winequiz/internal/tasting"
)

// Shape classifies a raw answer value.
type Shape int

const (
	ShapeDropped  Shape = iota // Unrecognized or empty value
	ShapeDetail                // {"correct": [...], ...}
	ShapeBareList              // [...] (legacy)
)

func (s Shape) String() string {
	switch s {
	case ShapeDetail:
		return "detail"
	case ShapeBareList:
		return "bare-list"
	default:
		return "dropped"
	}
}

// Decoded is the outcome of decoding one raw answer value.
type Decoded struct {
	Shape  Shape
	Detail tasting.AnswerDetail

	// Reason is set when Shape is ShapeDropped.
	Reason string
}

// DecodeAnswer decodes a raw answer value. An object with a list-valued
// "correct" field becomes a detail, a bare list becomes a detail with only
// Correct set, and anything else is dropped with a reason. Labels within
// each list are de-duplicated; non-string list elements are skipped.
func DecodeAnswer(v any) Decoded {
	if !truthy(v) {
		return dropped("empty value")
	}

	switch val := v.(type) {
	case map[string]any:
		correct, ok := stringList(val["correct"])
		if !ok {
			return dropped("object without a list-valued \"correct\" field")
		}
		d := tasting.AnswerDetail{Correct: dedupOrNil(correct)}
		if accept, ok := stringList(val["alsoAccept"]); ok {
			d.AlsoAccept = dedupOrNil(accept)
		}
		d.Note, _ = val["note"].(string)
		d.ExamTip, _ = val["examTip"].(string)
		return Decoded{Shape: ShapeDetail, Detail: d}

	case []any, []string:
		list, _ := stringList(val)
		return Decoded{Shape: ShapeBareList, Detail: tasting.AnswerDetail{Correct: dedupOrNil(list)}}
	}

	return dropped(fmt.Sprintf("unsupported value of type %T", v))
}

func dropped(reason string) Decoded {
	return Decoded{Shape: ShapeDropped, Reason: reason}
}

// stringList converts a JSON list into strings. It reports false when v is
// not a list at all.
func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// stringsOrSingle accepts either a single string or a list of strings.
func stringsOrSingle(v any) []string {
	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	list, _ := stringList(v)
	if len(list) == 0 {
		return nil
	}
	return list
}

// truthy follows JavaScript truthiness. Empty lists and objects are truthy.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	}
	return true
}

// asString renders scalar record fields as text. Numbers are accepted so
// that a vintage authored as 2019 still displays.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	}
	return ""
}

func dedupOrNil(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	return tasting.Dedup(labels)
}
