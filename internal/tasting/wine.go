package tasting

import "fmt"

// Color is the wine color as the exam distinguishes it.
type Color int

const (
	ColorWhite Color = iota
	ColorRed
)

// ColorOf maps the isRed flag of a profile to a Color.
func ColorOf(isRed bool) Color {
	if isRed {
		return ColorRed
	}
	return ColorWhite
}

// DisplayName returns the Japanese group label for the color.
func (c Color) DisplayName() string {
	switch c {
	case ColorRed:
		return "赤ワイン"
	default:
		return "白ワイン"
	}
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	default:
		return "white"
	}
}

// AnswerDetail is the graded truth for one category of one wine.
type AnswerDetail struct {
	// Correct lists the fully correct labels in authored order.
	Correct []string

	// AlsoAccept lists labels that are acceptable but not the primary answer.
	AlsoAccept []string

	// Note explains why this wine shows these traits.
	Note string

	// ExamTip is guidance on which option the exam expects.
	ExamTip string
}

// IsEmpty reports whether the detail has no correct and no acceptable labels.
func (d AnswerDetail) IsEmpty() bool {
	return len(d.Correct) == 0 && len(d.AlsoAccept) == 0
}

// Clone returns a deep copy of the detail.
func (d AnswerDetail) Clone() AnswerDetail {
	return AnswerDetail{
		Correct:    cloneStrings(d.Correct),
		AlsoAccept: cloneStrings(d.AlsoAccept),
		Note:       d.Note,
		ExamTip:    d.ExamTip,
	}
}

// Confusion is a comparison note against a commonly confused wine.
type Confusion struct {
	With     string
	Cues     []string
	Pitfalls []string
}

// WineProfile is one reference wine with its full answer key.
// Profiles are built once at load time and never mutated afterwards.
type WineProfile struct {
	ID          string
	Grape       string
	Region      string
	VintageHint string
	IsRed       bool
	Notes       string
	Summary     string
	Answers     map[Category]AnswerDetail
	Confusions  []Confusion
}

// Color returns the profile's wine color.
func (w WineProfile) Color() Color {
	return ColorOf(w.IsRed)
}

// Answer returns a copy of the answer detail for cat.
func (w WineProfile) Answer(cat Category) (AnswerDetail, bool) {
	d, ok := w.Answers[cat]
	if !ok {
		return AnswerDetail{}, false
	}
	return d.Clone(), true
}

// Label is the picker label, e.g. "ブルゴーニュ｜シャルドネ（2019）".
func (w WineProfile) Label() string {
	if w.VintageHint == "" {
		return fmt.Sprintf("%s｜%s", w.Region, w.Grape)
	}
	return fmt.Sprintf("%s｜%s（%s）", w.Region, w.Grape, w.VintageHint)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
