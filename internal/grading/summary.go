package grading

// Summary aggregates tallies across categories.
type Summary struct {
	Categories    int
	Perfect       int
	CorrectPicked int
	CorrectTotal  int
}

// Add folds one category tally into the summary.
func (s *Summary) Add(t Tally) {
	s.Categories++
	s.CorrectPicked += t.CorrectPicked
	s.CorrectTotal += t.CorrectTotal
	if t.Perfect() {
		s.Perfect++
	}
}

// Ratio returns CorrectPicked/CorrectTotal, or 0 when nothing is graded.
func (s Summary) Ratio() float64 {
	if s.CorrectTotal == 0 {
		return 0
	}
	return float64(s.CorrectPicked) / float64(s.CorrectTotal)
}
