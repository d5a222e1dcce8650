// Package ui renders the live sightings table.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridwatch/ridwatch/internal/sighting"
)

// App is the main Bubble Tea model: a table of aircraft currently broadcasting
// Remote ID, refreshed from the tracker once a second.
type App struct {
	tracker *sighting.Tracker
	iface   string
	channel func() int

	width     int
	height    int
	startTime time.Time

	sightings []*sighting.Sighting
	cursor    int
	showHelp  bool
}

type tickMsg time.Time

func NewApp(tracker *sighting.Tracker, iface string, channel func() int) *App {
	return &App{
		tracker:   tracker,
		iface:     iface,
		channel:   channel,
		startTime: time.Now(),
	}
}

// Run starts the TUI and blocks until it exits.
func Run(app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Init() tea.Cmd {
	return tickCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		case "down", "j":
			if a.cursor < len(a.sightings)-1 {
				a.cursor++
			}
		case "h", "?":
			a.showHelp = !a.showHelp
		}
		return a, nil

	case tickMsg:
		a.sightings = a.tracker.Sightings()
		if a.cursor >= len(a.sightings) && a.cursor > 0 {
			a.cursor = len(a.sightings) - 1
		}
		return a, tickCmd()
	}

	return a, nil
}

func (a *App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("ridwatch — Remote ID sightings"))
	sb.WriteString("\n\n")

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %-11s %-12s %7s %6s %6s %7s  %s",
		"UAS ID", "LAT", "LON", "ALT(m)", "KT", "TRK", "SIGNAL", "SEEN")))
	sb.WriteString("\n")

	if len(a.sightings) == 0 {
		sb.WriteString(normalRowStyle.Render("listening..."))
		sb.WriteString("\n")
	}

	now := time.Now()
	for i, s := range a.sightings {
		age := now.Sub(s.LastSeen)
		row := fmt.Sprintf("%-22s %-11.6f %-12.6f %7d %6.0f %5d° %s  %s",
			s.UASID, s.Latitude, s.Longitude, s.GroundAltitude,
			s.GroundSpeedKnots, s.TrackAngle,
			renderSignal(s.SignalDBM), renderAge(age))

		if i == a.cursor {
			sb.WriteString(selectedRowStyle.Render("> " + row))
		} else {
			sb.WriteString(normalRowStyle.Render(row))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(statusBarStyle.Render(fmt.Sprintf(
		"iface %s | channel %d | aircraft %d | up %s | q quit, h help",
		a.iface, a.channel(), len(a.sightings),
		time.Since(a.startTime).Round(time.Second))))

	return sb.String()
}

func (a *App) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ridwatch — help"))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("up/k, down/j   move selection"))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("h, ?           toggle this help"))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("q, esc         quit and restore the interface"))
	sb.WriteString("\n")
	return sb.String()
}

func renderSignal(dbm int) string {
	s := fmt.Sprintf("%4ddBm", dbm)
	switch {
	case dbm >= -55:
		return signalGoodStyle.Render(s)
	case dbm >= -75:
		return signalOkStyle.Render(s)
	default:
		return signalBadStyle.Render(s)
	}
}

func renderAge(age time.Duration) string {
	s := age.Round(time.Second).String()
	if age < 10*time.Second {
		return freshStyle.Render(s)
	}
	return staleStyle.Render(s)
}
