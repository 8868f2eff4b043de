package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/kinecalc/internal/kinematics"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899")).
		Width(20)

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Unit = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	ErrorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))
)

// Row renders one labelled quantity.
func Row(label string, v float64, unit string) string {
	return Label.Render(label) + Value.Render(FormatValue(v)) + " " + Unit.Render(unit)
}

// InputRows renders the parameter set.
func InputRows(p kinematics.Params) []string {
	return []string{
		Row("velocity", p.Velocity, "km/h"),
		Row("acceleration", p.Acceleration, "m/s²"),
		Row("elapsed time", p.ElapsedTime, "s"),
		Row("initial distance", p.InitialDistance, "km"),
		Row("initial fuel", p.InitialFuel, "kg"),
		Row("burn rate", p.FuelBurnRate, "kg/s"),
	}
}

// OutputRows renders the derived quantities.
func OutputRows(r kinematics.Result) []string {
	return []string{
		Row("new velocity", r.Velocity, "km/h"),
		Row("new distance", r.Distance, "km"),
		Row("remaining fuel", r.Fuel, "kg"),
	}
}

func Styled(w io.Writer, p kinematics.Params, r kinematics.Result) error {
	var b strings.Builder
	b.WriteString(Title.Render("inputs") + "\n")
	b.WriteString(strings.Join(InputRows(p), "\n"))
	b.WriteString("\n\n" + Title.Render("outputs") + "\n")
	b.WriteString(strings.Join(OutputRows(r), "\n"))

	_, err := fmt.Fprintln(w, Panel.Render(b.String()))
	return err
}
