// Package styles provides shared lipgloss styles for postgen output.
//
// Styles only take effect when the printer is styled; plain output
// never contains escape sequences.
package styles

import "charm.land/lipgloss/v2"

// Palette, matching the 256-color indices of the default theme.
var (
	Primary = lipgloss.Color("62")  // cyan/teal
	Success = lipgloss.Color("82")  // green
	Warning = lipgloss.Color("214") // orange
	Error   = lipgloss.Color("196") // red
	Muted   = lipgloss.Color("240") // gray
)

var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// HeaderStyle is used for table headers
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary).PaddingRight(2)

	// CellStyle is used for table cells
	CellStyle = lipgloss.NewStyle().PaddingRight(2)
)
