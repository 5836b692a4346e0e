package types

// Session commands

type StartSearchAction struct{}

func (a StartSearchAction) Type() string { return "start_search" }

type AdvanceAction struct{}

func (a AdvanceAction) Type() string { return "advance" }

type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// View toggles

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleLegendAction struct{}

func (a ToggleLegendAction) Type() string { return "toggle_legend" }

type OpenTraceAction struct{}

func (a OpenTraceAction) Type() string { return "open_trace" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
