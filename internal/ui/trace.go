package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// TraceOps shows the full step trace in the ov pager
type TraceOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewTraceOps creates a new trace operations instance
func NewTraceOps() *TraceOps {
	return &TraceOps{}
}

// SetProgram sets the program reference for terminal management
func (t *TraceOps) SetProgram(p *tea.Program) {
	t.program = p
}

// ShowTraceInPager shows the rendered trace using the ov pager
func (t *TraceOps) ShowTraceInPager(content string) error {
	if t.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := t.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = t.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the trace content string
	reader := strings.NewReader(content)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
