// Package log provides leveled, colored terminal output for the scaffolder.
// Levels are rendered through a single lipgloss style table so the progress
// lines and the final banner share one look.
package log

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for each output level.
var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// OsExit is the function called by Fatal to terminate the process.
// It is a package-level variable so tests can replace it without subprocess overhead.
var OsExit = os.Exit

// Info prints a white [INFO] message to stdout.
func Info(msg string) {
	fmt.Printf("%s %s\n", infoStyle.Render("[INFO]"), msg)
}

// Success prints a green [SUCCESS] message to stdout.
func Success(msg string) {
	fmt.Printf("%s %s\n", successStyle.Render("[SUCCESS]"), msg)
}

// Warning prints a yellow [WARNING] message to stdout.
func Warning(msg string) {
	fmt.Printf("%s %s\n", warningStyle.Render("[WARNING]"), msg)
}

// Error prints a red [ERROR] message to stderr.
func Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("[ERROR]"), msg)
}

// Fatal prints a red [ERROR] message then exits with status 1.
func Fatal(msg string) {
	Error(msg)
	OsExit(1)
}

// Step prints a cyan arrow line marking the start of a materializer step.
func Step(msg string) {
	fmt.Printf("%s %s\n", stepStyle.Render("→"), msg)
}
