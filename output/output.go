// Package output provides styled terminal output for the patterncraft CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers, so every command reports progress the same way.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// writer is swapped in tests to capture output
	writer io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects all output, returning the previous writer.
// Intended for tests.
func SetWriter(w io.Writer) io.Writer {
	prev := writer
	writer = w
	return prev
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Created project: MyMVCProject")
func Success(msg string) {
	fmt.Fprintln(writer, successStyle.Render("✔ "+msg))
}

// Error prints a failure that needs user attention in red.
func Error(msg string) {
	fmt.Fprintln(writer, errorStyle.Render("✘ "+msg))
}

// Warn prints a non-fatal problem in yellow. Used for provisioning steps
// that failed without stopping generation.
func Warn(msg string) {
	fmt.Fprintln(writer, warnStyle.Render("⚠ "+msg))
}

// Info prints a status update or explanation in cyan.
func Info(msg string) {
	fmt.Fprintln(writer, infoStyle.Render("• "+msg))
}

// Step prints an indented step message in gray. Used for actionable next
// steps or sub-items.
//
// Example:
//
//	output.Step("cd MyMVCProject")
//	output.Step("source venv/bin/activate")
func Step(msg string) {
	fmt.Fprintln(writer, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(writer, stepStyle.Render("· "+msg))
	}
}
