package session

// MaxMissed is the number of wrong answers listed on the result screen.
const MaxMissed = 3

// Summary holds the data displayed on the result screen.
type Summary struct {
	Score    int
	Attempts int
	Correct  int
	Accuracy int // 0-100
	Missed   []HistoryEntry
}

// Accuracy returns the percentage of correct entries, rounded to the nearest
// integer with halves rounding up. An empty history has accuracy 0.
func Accuracy(entries []HistoryEntry) int {
	if len(entries) == 0 {
		return 0
	}
	correct := countCorrect(entries)
	total := len(entries)
	// round(100*c/t) for non-negative values, in integers.
	return (200*correct + total) / (2 * total)
}

// BuildSummary derives a Summary from a round's history.
func BuildSummary(score int, entries []HistoryEntry) Summary {
	var missed []HistoryEntry
	for _, e := range entries {
		if e.IsCorrect {
			continue
		}
		missed = append(missed, e)
		if len(missed) == MaxMissed {
			break
		}
	}
	return Summary{
		Score:    score,
		Attempts: len(entries),
		Correct:  countCorrect(entries),
		Accuracy: Accuracy(entries),
		Missed:   missed,
	}
}

func countCorrect(entries []HistoryEntry) int {
	n := 0
	for _, e := range entries {
		if e.IsCorrect {
			n++
		}
	}
	return n
}
