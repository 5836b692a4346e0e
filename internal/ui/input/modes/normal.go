package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"matchwalk/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEnter, tea.KeySpace:
		// Enter/space advance the walker; before a search starts they do nothing
		if ctx.SearchActive() {
			return []types.Action{types.AdvanceAction{}}, true
		}
		return nil, true // Consume the key even if no action
	}

	// Handle string keys
	switch msg.String() {
	case "s":
		// Start (or restart) the search with the current inputs
		return []types.Action{types.StartSearchAction{}}, true

	case "n":
		if ctx.SearchActive() {
			return []types.Action{types.AdvanceAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.ResetAction{}}, true

	case "t":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditText}}, true

	case "p":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditPattern}}, true

	case "v":
		// Full trace in the pager, only meaningful once steps exist
		if ctx.HasTrace() {
			return []types.Action{types.OpenTraceAction{}}, true
		}
		return nil, true

	case "l":
		return []types.Action{types.ToggleLegendAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		if ctx.HelpVisible() {
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
