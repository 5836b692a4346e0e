package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchwalk/internal/domain"
)

func cellAt(t *testing.T, cells []Cell, col int) Cell {
	t.Helper()
	for _, c := range cells {
		if c.Column == col {
			return c
		}
	}
	t.Fatalf("no cell at column %d", col)
	return Cell{}
}

func TestBuildGrid_NilStep(t *testing.T) {
	g := BuildGrid("ABCD", "BC", nil, nil)

	// Pattern drawn unshifted, nothing highlighted
	require.Len(t, g.PatternCells, 2)
	assert.Equal(t, 0, g.PatternCells[0].Column)
	assert.Equal(t, byte('B'), g.PatternCells[0].Char)
	for _, c := range g.PatternCells {
		assert.Equal(t, HighlightDefault, c.Highlight)
	}
	for _, c := range g.TextCells {
		assert.Equal(t, HighlightDefault, c.Highlight)
	}
	require.Len(t, g.TextLabels, 4)
	assert.Equal(t, 3, g.TextLabels[3].Index)
}

func TestBuildGrid_PendingHighlightsComparedPair(t *testing.T) {
	step := &domain.Step{TextIndex: 3, PatternIndex: 1, Shift: 2, Outcome: domain.OutcomePending}
	g := BuildGrid("ABCDEF", "CD", step, nil)

	assert.Equal(t, HighlightComparing, cellAt(t, g.TextCells, 3).Highlight)
	assert.Equal(t, HighlightComparing, cellAt(t, g.PatternCells, 3).Highlight)
	// The other pattern cell stays default
	assert.Equal(t, HighlightDefault, cellAt(t, g.PatternCells, 2).Highlight)
	// Pattern labels follow the shift
	require.Len(t, g.PatternLabels, 2)
	assert.Equal(t, Label{Column: 2, Index: 0}, g.PatternLabels[0])
	assert.Equal(t, Label{Column: 3, Index: 1}, g.PatternLabels[1])
}

func TestBuildGrid_MismatchHighlight(t *testing.T) {
	step := &domain.Step{TextIndex: 1, PatternIndex: 1, Shift: 0, Outcome: domain.OutcomeMismatch}
	g := BuildGrid("AB", "AC", step, nil)

	assert.Equal(t, HighlightMismatch, cellAt(t, g.TextCells, 1).Highlight)
	assert.Equal(t, HighlightMismatch, cellAt(t, g.PatternCells, 1).Highlight)
	assert.Equal(t, HighlightDefault, cellAt(t, g.PatternCells, 0).Highlight)
}

func TestBuildGrid_FullMatchHighlightsWholePattern(t *testing.T) {
	step := &domain.Step{TextIndex: 3, PatternIndex: 1, Shift: 2, Outcome: domain.OutcomeFullMatch, FoundAt: []int{2}}
	g := BuildGrid("ABCDEF", "CD", step, nil)

	// Every pattern cell is marked, not just the one at PatternIndex
	for _, c := range g.PatternCells {
		assert.Equal(t, HighlightMatch, c.Highlight)
	}
	// Text cells of the confirmed occurrence are marked too
	assert.Equal(t, HighlightMatch, cellAt(t, g.TextCells, 2).Highlight)
	assert.Equal(t, HighlightMatch, cellAt(t, g.TextCells, 3).Highlight)
	assert.Equal(t, HighlightDefault, cellAt(t, g.TextCells, 4).Highlight)
}

func TestBuildGrid_PreviousMatchesStayFound(t *testing.T) {
	// Comparing at shift 2 while a match at index 0 was already found
	step := &domain.Step{TextIndex: 2, PatternIndex: 0, Shift: 2, Outcome: domain.OutcomePending}
	g := BuildGrid("AAAA", "AA", step, []int{0})

	assert.Equal(t, HighlightFound, cellAt(t, g.TextCells, 0).Highlight)
	assert.Equal(t, HighlightFound, cellAt(t, g.TextCells, 1).Highlight)
	assert.Equal(t, HighlightComparing, cellAt(t, g.TextCells, 2).Highlight)
	assert.Equal(t, HighlightDefault, cellAt(t, g.TextCells, 3).Highlight)
}

func TestBuildGrid_CurrentMatchOverridesFound(t *testing.T) {
	// Overlapping case: found [0,1], current step confirms the match at 1.
	// Column 1 belongs to both; the fresh match wins.
	step := &domain.Step{TextIndex: 2, PatternIndex: 1, Shift: 1, Outcome: domain.OutcomeFullMatch, FoundAt: []int{1}}
	g := BuildGrid("AAAA", "AA", step, []int{0, 1})

	assert.Equal(t, HighlightFound, cellAt(t, g.TextCells, 0).Highlight)
	assert.Equal(t, HighlightMatch, cellAt(t, g.TextCells, 1).Highlight)
	assert.Equal(t, HighlightMatch, cellAt(t, g.TextCells, 2).Highlight)
}

func TestBuildGrid_ComparingOverridesFound(t *testing.T) {
	// The cell under comparison sits inside an earlier match
	step := &domain.Step{TextIndex: 1, PatternIndex: 0, Shift: 1, Outcome: domain.OutcomePending}
	g := BuildGrid("AAAA", "AA", step, []int{0})

	assert.Equal(t, HighlightComparing, cellAt(t, g.TextCells, 1).Highlight)
}

func TestBuildGrid_ClipsPatternToTextSpan(t *testing.T) {
	// Shift pushes the pattern tail past the end of the text
	step := &domain.Step{TextIndex: 3, PatternIndex: 0, Shift: 3, Outcome: domain.OutcomePending}
	g := BuildGrid("ABCD", "XYZ", step, nil)

	require.Len(t, g.PatternCells, 1)
	assert.Equal(t, 3, g.PatternCells[0].Column)
	require.Len(t, g.PatternLabels, 1)
	// Text labels are never clipped
	assert.Len(t, g.TextLabels, 4)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Ready. Press 'n' to begin comparison.", StatusLine(nil))

	pending := &domain.Step{TextIndex: 5, PatternIndex: 2, Shift: 3, Outcome: domain.OutcomePending}
	assert.Equal(t, "Shifting pattern by 3. Comparing pattern[2] with text[5].", StatusLine(pending))

	mismatch := &domain.Step{TextIndex: 5, PatternIndex: 2, Shift: 3, Outcome: domain.OutcomeMismatch}
	assert.Equal(t, "Mismatch at text[5] and pattern[2]. Shifting pattern.", StatusLine(mismatch))

	match := &domain.Step{TextIndex: 6, PatternIndex: 3, Shift: 3, Outcome: domain.OutcomeFullMatch, FoundAt: []int{3}}
	assert.Equal(t, "Pattern found at index 3! Press 'n' to continue search.", StatusLine(match))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Search complete. Pattern not found.", Summary(nil))
	assert.Equal(t, "Search complete. Pattern found at indices: [0, 9, 12]", Summary([]int{0, 9, 12}))
}
