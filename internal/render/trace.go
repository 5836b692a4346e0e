package render

import (
	"fmt"
	"strings"

	"matchwalk/internal/domain"
)

// TraceText formats the whole generated trace as pager-friendly text,
// one numbered line per step.
func TraceText(text, pattern string, steps []domain.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Naive search trace\n")
	fmt.Fprintf(&b, "text:    %q (n=%d)\n", text, len(text))
	fmt.Fprintf(&b, "pattern: %q (m=%d)\n", pattern, len(pattern))
	fmt.Fprintf(&b, "steps:   %d\n\n", len(steps))

	for i, s := range steps {
		switch s.Outcome {
		case domain.OutcomeFullMatch:
			fmt.Fprintf(&b, "%4d  shift=%-3d full match at index %d\n", i, s.Shift, s.FoundAt[0])
		default:
			fmt.Fprintf(&b, "%4d  shift=%-3d %s text[%d]=%q pattern[%d]=%q\n",
				i, s.Shift, s.Outcome, s.TextIndex, text[s.TextIndex], s.PatternIndex, pattern[s.PatternIndex])
		}
	}

	found := make([]int, 0, 4)
	for _, s := range steps {
		if s.IsMatch() {
			found = append(found, s.FoundAt...)
		}
	}
	fmt.Fprintf(&b, "\n%s\n", Summary(found))
	return b.String()
}
