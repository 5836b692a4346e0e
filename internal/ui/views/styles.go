package views

import (
	"github.com/charmbracelet/lipgloss"

	"matchwalk/internal/render"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	FieldName     lipgloss.Style
	FieldValue    lipgloss.Style
	FieldEditing  lipgloss.Style
	Label         lipgloss.Style
	CellDefault   lipgloss.Style
	CellComparing lipgloss.Style
	CellMismatch  lipgloss.Style
	CellMatch     lipgloss.Style
	CellFound     lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Legend        lipgloss.Style
	Help          lipgloss.Style
	Dim           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		FieldName:    lipgloss.NewStyle().Faint(true),
		FieldValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FieldEditing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CellDefault: lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("236")),
		CellComparing: lipgloss.NewStyle().
			Background(lipgloss.Color("220")). // yellow
			Foreground(lipgloss.Color("236")),
		CellMismatch: lipgloss.NewStyle().
			Background(lipgloss.Color("196")). // red
			Foreground(lipgloss.Color("231")),
		CellMatch: lipgloss.NewStyle().
			Background(lipgloss.Color("41")). // green
			Foreground(lipgloss.Color("231")),
		CellFound: lipgloss.NewStyle().
			Background(lipgloss.Color("33")). // blue
			Foreground(lipgloss.Color("231")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Legend:        lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Dim:           lipgloss.NewStyle().Faint(true),
	}
}

// CellStyle maps a highlight class to its style
func (s *Styles) CellStyle(h render.Highlight) lipgloss.Style {
	switch h {
	case render.HighlightComparing:
		return s.CellComparing
	case render.HighlightMismatch:
		return s.CellMismatch
	case render.HighlightMatch:
		return s.CellMatch
	case render.HighlightFound:
		return s.CellFound
	default:
		return s.CellDefault
	}
}
