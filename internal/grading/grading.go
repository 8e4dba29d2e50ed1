// Package grading classifies a learner's picks for one category against
// its answer key.
package grading

// Verdict is the classification of one option after grading.
type Verdict int

const (
	Neutral          Verdict = iota // Not picked, neither correct nor acceptable
	CorrectPicked                   // Correct and picked
	CorrectMissed                   // Correct but not picked ("should have been picked")
	AcceptablePicked                // Acceptable and picked
	AcceptableMissed                // Acceptable but not picked
	Incorrect                       // Picked but neither correct nor acceptable
)

func (v Verdict) String() string {
	switch v {
	case CorrectPicked:
		return "correct"
	case CorrectMissed:
		return "missed"
	case AcceptablePicked:
		return "acceptable"
	case AcceptableMissed:
		return "acceptable-missed"
	case Incorrect:
		return "incorrect"
	default:
		return "neutral"
	}
}

// Symbol returns a one-rune marker for plain-text output.
func (v Verdict) Symbol() string {
	switch v {
	case CorrectPicked:
		return "✓"
	case CorrectMissed:
		return "○"
	case AcceptablePicked:
		return "△"
	case AcceptableMissed:
		return "▵"
	case Incorrect:
		return "✗"
	default:
		return "·"
	}
}

// Picked reports whether the verdict belongs to a picked option.
func (v Verdict) Picked() bool {
	return v == CorrectPicked || v == AcceptablePicked || v == Incorrect
}

// OptionVerdict pairs an option label with its verdict.
type OptionVerdict struct {
	Label   string
	Verdict Verdict
}

// Tally counts correct picks against the size of the correct set.
// Acceptable picks are informational and never counted.
type Tally struct {
	CorrectPicked int
	CorrectTotal  int
}

// Perfect reports whether every correct label was picked.
func (t Tally) Perfect() bool {
	return t.CorrectTotal > 0 && t.CorrectPicked == t.CorrectTotal
}

// Result is the grading of one category.
type Result struct {
	Verdicts []OptionVerdict
	Tally    Tally
}

// Verdict returns the verdict for label, or Neutral if label is not one of
// the graded options.
func (r Result) Verdict(label string) Verdict {
	for _, ov := range r.Verdicts {
		if ov.Label == label {
			return ov.Verdict
		}
	}
	return Neutral
}

// Grade classifies every option in options. A label in both correct and
// accept is treated as correct. Grade never modifies its arguments, so it
// is safe to call on every render.
func Grade(options, correct, accept []string, picked map[string]bool) Result {
	correctSet := toSet(correct)
	acceptSet := toSet(accept)

	verdicts := make([]OptionVerdict, 0, len(options))
	for _, opt := range options {
		verdicts = append(verdicts, OptionVerdict{
			Label:   opt,
			Verdict: classify(opt, correctSet, acceptSet, picked[opt]),
		})
	}

	tally := Tally{CorrectTotal: len(correctSet)}
	for c := range correctSet {
		if picked[c] {
			tally.CorrectPicked++
		}
	}

	return Result{Verdicts: verdicts, Tally: tally}
}

func classify(opt string, correct, accept map[string]bool, isPicked bool) Verdict {
	switch {
	case correct[opt] && isPicked:
		return CorrectPicked
	case correct[opt]:
		return CorrectMissed
	case accept[opt] && isPicked:
		return AcceptablePicked
	case accept[opt]:
		return AcceptableMissed
	case isPicked:
		return Incorrect
	default:
		return Neutral
	}
}

// Hint is the number of correct labels, shown before a category is
// revealed. It equals Tally.CorrectTotal without running Grade.
func Hint(correct []string) int {
	return len(toSet(correct))
}

func toSet(labels []string) map[string]bool {
	s := make(map[string]bool, len(labels))
	for _, l := range labels {
		s[l] = true
	}
	return s
}
