// Package tui is an interactive view that scrubs a maneuver's elapsed time.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinecalc/internal/kinematics"
	"github.com/san-kum/kinecalc/internal/report"
)

const (
	DefaultStep = 60.0 // s
	minStep     = 1.0
	maxStep     = 86400.0
	historySize = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the parameters under inspection and the latest computation.
type Model struct {
	initial kinematics.Params
	params  kinematics.Params
	step    float64
	result  kinematics.Result
	err     error
	history []float64
}

func NewModel(p kinematics.Params) Model {
	m := Model{initial: p, params: p, step: DefaultStep}
	m.recompute()
	return m
}

func (m Model) Params() kinematics.Params { return m.params }
func (m Model) Result() kinematics.Result { return m.result }
func (m Model) Err() error                { return m.err }
func (m Model) Step() float64             { return m.step }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l":
		m.params.ElapsedTime += m.step
	case "left", "h":
		m.params.ElapsedTime -= m.step
		if m.params.ElapsedTime < 0 {
			m.params.ElapsedTime = 0
		}
	case "up", "k":
		m.step = min(m.step*2, maxStep)
		return m, nil
	case "down", "j":
		m.step = max(m.step/2, minStep)
		return m, nil
	case "r":
		m.params = m.initial
		m.step = DefaultStep
		m.history = nil
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m *Model) recompute() {
	m.result, m.err = kinematics.Compute(m.params)
	if m.err != nil {
		return
	}
	m.history = append(m.history, m.result.Velocity)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("kinecalc") + "\n")
	s.WriteString(report.Row("elapsed time", m.params.ElapsedTime, "s") + "\n")
	s.WriteString(report.Row("step", m.step, "s") + "\n\n")

	if m.err != nil {
		s.WriteString(report.ErrorText.Render(m.err.Error()) + "\n")
	} else {
		s.WriteString(strings.Join(report.OutputRows(m.result), "\n") + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(50), asciigraph.Caption("velocity (km/h)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("←/→ time  ↑/↓ step  r reset  q quit"))
	return s.String()
}

// Run starts the interactive view.
func Run(p kinematics.Params) error {
	_, err := tea.NewProgram(NewModel(p)).Run()
	return err
}
