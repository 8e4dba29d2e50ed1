package dataset

import (
	"fmt"
	"slices"

	"github.com/abhisek/winequiz/internal/tasting"
)

// Finding is an authoring issue found by Lint. Findings never stop the
// quiz from running.
type Finding struct {
	WineID   string
	Category tasting.Category
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s[%s]: %s", f.WineID, f.Category, f.Message)
}

// Lint checks every wine against the fixed option table and the count
// rules. It reports labels a learner could never pick because the fixed
// list for the wine color lacks them, correct lists that the count rule
// will truncate, and answer keys outside the canonical taxonomy.
func Lint(ds *Dataset, table tasting.FixedTable) []Finding {
	var out []Finding
	for _, w := range ds.wines {
		color := w.Color()
		for _, cat := range tasting.Order() {
			d, ok := w.Answers[cat]
			if !ok {
				continue
			}
			if tasting.HiddenForColor(cat, color) {
				out = append(out, Finding{w.ID, cat, fmt.Sprintf("category is never shown for %s wines", color)})
				continue
			}
			if n := tasting.ExpectedCount(cat); len(d.Correct) > n {
				out = append(out, Finding{w.ID, cat, fmt.Sprintf("%d correct labels, only the first %d count", len(d.Correct), n)})
			}
			if !table.Has(cat, color) {
				continue
			}
			known := make(map[string]bool)
			for _, o := range table.Lookup(cat, color) {
				known[o] = true
			}
			for _, l := range d.Correct {
				if !known[l] {
					out = append(out, Finding{w.ID, cat, fmt.Sprintf("correct label %q is not a selectable option", l)})
				}
			}
			for _, l := range d.AlsoAccept {
				if !known[l] {
					out = append(out, Finding{w.ID, cat, fmt.Sprintf("acceptable label %q is not a selectable option", l)})
				}
			}
		}
		var unknown []tasting.Category
		for cat := range w.Answers {
			if !tasting.IsKnown(cat) {
				unknown = append(unknown, cat)
			}
		}
		slices.Sort(unknown)
		for _, cat := range unknown {
			out = append(out, Finding{w.ID, cat, "unknown category"})
		}
	}
	return out
}
