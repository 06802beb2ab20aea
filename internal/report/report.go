// Package report renders the final outcome of a scaffolding run: a styled
// success banner with a usage hint and a per-step timing summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StepTiming is the wall-clock duration of one completed materializer step.
type StepTiming struct {
	Name     string
	Duration time.Duration
}

// Timings accumulates step durations in completion order.
//
// Recording is non-fatal by design: a run that fails midway simply reports
// nothing, so Timings never needs error handling.
type Timings struct {
	steps []StepTiming
}

// Record appends one completed step.
func (t *Timings) Record(name string, d time.Duration) {
	t.steps = append(t.steps, StepTiming{Name: name, Duration: d})
}

// Steps returns the recorded steps in completion order.
func (t *Timings) Steps() []StepTiming {
	return t.steps
}

// Total returns the sum of all recorded step durations.
func (t *Timings) Total() time.Duration {
	var total time.Duration
	for _, s := range t.steps {
		total += s.Duration
	}
	return total
}

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 2)

	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Success renders the banner shown after a completed run: the project name
// and absolute path, the commands available in the generated project, and the
// step timing summary.
func Success(projectName, absPath string, timings *Timings) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("Created %s", projectName)))
	b.WriteString("\n")
	b.WriteString(pathStyle.Render(absPath))
	b.WriteString("\n\n")
	b.WriteString("Next steps:\n")
	b.WriteString(fmt.Sprintf("  cd %s\n", projectName))
	b.WriteString("  npm run dev      start the dev server\n")
	b.WriteString("  npm run build    build for production")

	if steps := timings.Steps(); len(steps) > 0 {
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(stepSummary(steps, timings.Total())))
	}

	return bannerStyle.Render(b.String())
}

// stepSummary formats one line per step plus a total.
func stepSummary(steps []StepTiming, total time.Duration) string {
	var b strings.Builder
	for _, s := range steps {
		fmt.Fprintf(&b, "%-28s %s\n", s.Name, formatDuration(s.Duration))
	}
	fmt.Fprintf(&b, "%-28s %s", "total", formatDuration(total))
	return b.String()
}

// formatDuration renders a duration as "45s", "3m 15s", or "1h 2m 30s".
func formatDuration(d time.Duration) string {
	seconds := int(d.Round(time.Second).Seconds())
	if seconds <= 0 {
		return "<1s"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
