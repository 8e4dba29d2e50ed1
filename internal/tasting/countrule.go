package tasting

// DefaultExpectedCount applies to every category without an explicit rule.
const DefaultExpectedCount = 1

// expectedCounts lists the categories whose exam answer takes more than
// one label.
var expectedCounts = map[Category]int{
	ColorTone:            2,
	AppearanceImpression: 2,
	AromaFirstImpression: 2,
	AromaFeatures:        4,
	AromaSpice:           2,
	AromaImpression:      2,
}

// ExpectedCount returns the canonical number of correct labels for cat.
func ExpectedCount(cat Category) int {
	if n, ok := expectedCounts[cat]; ok {
		return n
	}
	return DefaultExpectedCount
}

// ApplyCountRule caps detail.Correct to the expected count for cat,
// keeping the first entries in authored order. The remaining fields pass
// through unchanged. The returned detail never shares slices with detail.
func ApplyCountRule(cat Category, detail AnswerDetail) AnswerDetail {
	out := detail.Clone()
	if n := ExpectedCount(cat); len(out.Correct) > n {
		out.Correct = out.Correct[:n:n]
	}
	return out
}
