package render

import (
	"fmt"
	"strings"

	"matchwalk/internal/domain"
)

// StatusLine describes the given step in one human-readable sentence.
// A nil step yields the ready prompt shown before the first advance.
func StatusLine(step *domain.Step) string {
	if step == nil {
		return "Ready. Press 'n' to begin comparison."
	}
	switch step.Outcome {
	case domain.OutcomePending:
		return fmt.Sprintf("Shifting pattern by %d. Comparing pattern[%d] with text[%d].",
			step.Shift, step.PatternIndex, step.TextIndex)
	case domain.OutcomeMismatch:
		return fmt.Sprintf("Mismatch at text[%d] and pattern[%d]. Shifting pattern.",
			step.TextIndex, step.PatternIndex)
	case domain.OutcomeFullMatch:
		return fmt.Sprintf("Pattern found at index %d! Press 'n' to continue search.",
			step.FoundAt[0])
	default:
		return ""
	}
}

// Summary is the message for the completed state
func Summary(found []int) string {
	if len(found) == 0 {
		return "Search complete. Pattern not found."
	}
	parts := make([]string, len(found))
	for i, f := range found {
		parts[i] = fmt.Sprintf("%d", f)
	}
	return fmt.Sprintf("Search complete. Pattern found at indices: [%s]", strings.Join(parts, ", "))
}
