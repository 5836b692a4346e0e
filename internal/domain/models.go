package domain

// Outcome classifies a single step of the naive search
type Outcome int

const (
	// OutcomePending means the characters are about to be compared
	OutcomePending Outcome = iota
	// OutcomeMismatch means the characters differed
	OutcomeMismatch
	// OutcomeFullMatch means the whole pattern matched at the current shift
	OutcomeFullMatch
)

// String returns a display name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "comparing"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeFullMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Step is one atomic, replayable event of the naive search trace
type Step struct {
	TextIndex    int // position in the text under comparison (0-based)
	PatternIndex int // position in the pattern under comparison (0-based)
	Shift        int // alignment offset of the pattern against the text
	Outcome      Outcome
	FoundAt      []int // match start index, populated only on full match
}

// IsMatch reports whether the step confirms a full pattern occurrence
func (s Step) IsMatch() bool {
	return s.Outcome == OutcomeFullMatch
}
