package search

import (
	"matchwalk/internal/domain"
)

// Generate produces the full comparison trace of the naive string search
// of pattern in text. The returned steps are in playback order: for every
// candidate shift a Pending step precedes each comparison, a Mismatch step
// closes a failed shift, and a FullMatch step closes a successful one.
// The outer loop never stops early, so overlapping occurrences are all found.
//
// Generation is eager and deterministic; the same inputs always yield the
// identical sequence. Callers are expected to validate inputs beforehand,
// an empty pattern or a pattern longer than the text yields no steps.
func Generate(text, pattern string) []domain.Step {
	n := len(text)
	m := len(pattern)

	if m == 0 || n < m {
		return nil
	}

	steps := make([]domain.Step, 0, n)

	for i := 0; i <= n-m; i++ {
		matched := true
		for j := 0; j < m; j++ {
			// Before comparison
			steps = append(steps, domain.Step{
				TextIndex:    i + j,
				PatternIndex: j,
				Shift:        i,
				Outcome:      domain.OutcomePending,
			})
			if text[i+j] != pattern[j] {
				steps = append(steps, domain.Step{
					TextIndex:    i + j,
					PatternIndex: j,
					Shift:        i,
					Outcome:      domain.OutcomeMismatch,
				})
				matched = false
				break
			}
		}
		if matched {
			steps = append(steps, domain.Step{
				TextIndex:    i + m - 1,
				PatternIndex: m - 1,
				Shift:        i,
				Outcome:      domain.OutcomeFullMatch,
				FoundAt:      []int{i},
			})
		}
	}

	return steps
}

// Occurrences extracts the match start indices from a generated trace,
// in emission order.
func Occurrences(steps []domain.Step) []int {
	var found []int
	for _, s := range steps {
		if s.IsMatch() {
			found = append(found, s.FoundAt...)
		}
	}
	return found
}
