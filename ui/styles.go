package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorSky     = lipgloss.Color("#0984E3")
	colorGreen   = lipgloss.Color("#00B894")
	colorYellow  = lipgloss.Color("#FDCB6E")
	colorCyan    = lipgloss.Color("#00CEC9")
	colorGray    = lipgloss.Color("#636E72")
	colorDimGray = lipgloss.Color("#2D3436")
	colorWhite   = lipgloss.Color("#DFE6E9")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSky).
			PaddingLeft(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			PaddingLeft(2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Background(colorDimGray)

	normalRowStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			PaddingLeft(2)

	freshStyle = lipgloss.NewStyle().Foreground(colorGreen)
	staleStyle = lipgloss.NewStyle().Foreground(colorGray)

	signalGoodStyle = lipgloss.NewStyle().Foreground(colorGreen)
	signalOkStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	signalBadStyle  = lipgloss.NewStyle().Foreground(colorGray)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)
)
