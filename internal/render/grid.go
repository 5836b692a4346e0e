// Package render derives the visual model for a search step. It is purely
// functional: the grid and status text are recomputed from scratch from the
// current step and the matches found so far, nothing here mutates state.
package render

import (
	"matchwalk/internal/domain"
)

// Highlight is the display class of one grid cell
type Highlight int

const (
	HighlightDefault Highlight = iota
	HighlightComparing
	HighlightMismatch
	HighlightMatch // the match confirmed by the current step
	HighlightFound // a match found on an earlier step
)

// String returns the highlight name used in the legend
func (h Highlight) String() string {
	switch h {
	case HighlightComparing:
		return "comparing"
	case HighlightMismatch:
		return "mismatch"
	case HighlightMatch:
		return "match"
	case HighlightFound:
		return "found"
	default:
		return "default"
	}
}

// Cell is one character box in the grid
type Cell struct {
	Column    int // absolute text column
	Char      byte
	Highlight Highlight
}

// Label is an index caption above or below a row of cells
type Label struct {
	Column int // absolute text column
	Index  int // the index value to display
}

// Grid is the render model for one step: pattern row aligned over the text
// row at the step's shift, with index labels on the outside
type Grid struct {
	PatternLabels []Label
	PatternCells  []Cell
	TextCells     []Cell
	TextLabels    []Label
}

// BuildGrid computes the grid for a step. A nil step draws the pattern
// unshifted with no highlights (the layout before the first advance).
// Pattern cells and labels that fall outside the text's column span are
// clipped.
func BuildGrid(text, pattern string, step *domain.Step, found []int) Grid {
	n := len(text)
	m := len(pattern)

	shift := 0
	outcome := domain.OutcomePending
	textIdx, patternIdx := -1, -1
	var stepFound []int
	if step != nil {
		shift = step.Shift
		outcome = step.Outcome
		textIdx = step.TextIndex
		patternIdx = step.PatternIndex
		stepFound = step.FoundAt
	}

	// Text positions covered by previously found matches
	previouslyFound := make(map[int]bool)
	for _, fi := range found {
		for k := 0; k < m; k++ {
			previouslyFound[fi+k] = true
		}
	}

	// Positions of the match confirmed by this very step. These stay
	// distinguishable from older finds.
	currentMatch := make(map[int]bool)
	if step != nil && step.IsMatch() && len(stepFound) > 0 {
		for k := 0; k < m; k++ {
			currentMatch[stepFound[0]+k] = true
		}
	}

	g := Grid{
		PatternLabels: make([]Label, 0, m),
		PatternCells:  make([]Cell, 0, m),
		TextCells:     make([]Cell, 0, n),
		TextLabels:    make([]Label, 0, n),
	}

	for i := 0; i < m; i++ {
		col := shift + i
		if col < 0 || col >= n {
			continue
		}
		g.PatternLabels = append(g.PatternLabels, Label{Column: col, Index: i})

		hl := HighlightDefault
		switch {
		case step == nil:
			// initial layout, nothing highlighted
		case outcome == domain.OutcomeFullMatch:
			hl = HighlightMatch
		case i == patternIdx && outcome == domain.OutcomePending:
			hl = HighlightComparing
		case i == patternIdx && outcome == domain.OutcomeMismatch:
			hl = HighlightMismatch
		}
		g.PatternCells = append(g.PatternCells, Cell{Column: col, Char: pattern[i], Highlight: hl})
	}

	for i := 0; i < n; i++ {
		hl := HighlightDefault
		if previouslyFound[i] {
			hl = HighlightFound
		}
		// Current step highlights override older finds
		switch {
		case step == nil:
		case outcome == domain.OutcomePending && i == textIdx:
			hl = HighlightComparing
		case outcome == domain.OutcomeMismatch && i == textIdx:
			hl = HighlightMismatch
		case outcome == domain.OutcomeFullMatch && currentMatch[i]:
			hl = HighlightMatch
		}
		g.TextCells = append(g.TextCells, Cell{Column: i, Char: text[i], Highlight: hl})
		g.TextLabels = append(g.TextLabels, Label{Column: i, Index: i})
	}

	return g
}
