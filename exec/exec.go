package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands with styled output
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // Additional environment variables
	Dir    string   // Working directory
}

// Result records the outcome of a captured command invocation.
type Result struct {
	Command  string // The command line that ran, for reporting
	ExitCode int    // Process exit code, 0 on success
	Output   string // Combined stdout and stderr
}

// Ok reports whether the command exited cleanly.
func (r *Result) Ok() bool {
	return r.ExitCode == 0
}

// NewExecutor creates an executor with sensible defaults
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		commandFunc: exec.Command, // Can be mocked for tests
	}
}

// Capture executes a command and records its exit code and combined output.
// A non-zero exit code is reported in the Result, not as an error; the error
// return covers failures to run the command at all.
func (e *Executor) Capture(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := e.commandFunc(name, args...)

	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	result := &Result{Command: strings.Join(append([]string{name}, args...), " ")}

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return nil, enhanceError(err, name)
		}
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return nil, fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		result.Output = buf.String()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				result.ExitCode = exitErr.ExitCode()
				return result, nil
			}
			if isCommandNotFound(err) {
				return nil, enhanceError(err, name)
			}
			return nil, fmt.Errorf("%s failed: %w", name, err)
		}
		return result, nil
	}
}

// CaptureWithSpinner captures a command behind a progress spinner, so long
// installs stay readable. The spinner resolves to a check or cross mark from
// the command's outcome; result and error semantics match Capture.
func (e *Executor) CaptureWithSpinner(ctx context.Context, message, name string, args ...string) (*Result, error) {
	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := e.Capture(ctx, name, args...)
		done <- outcome{result: result, err: err}
	}()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(e.stderr))

	go func() {
		if _, err := p.Run(); err != nil {
			// Spinner failures never fail the command
			_ = err
		}
	}()

	out := <-done

	spinErr := out.err
	if spinErr == nil && out.result != nil && !out.result.Ok() {
		spinErr = fmt.Errorf("exit %d", out.result.ExitCode)
	}
	p.Send(spinnerDoneMsg{err: spinErr})
	// Give spinner time to render final state
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return out.result, out.err
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✗ %s\n", m.message)
		}
		return fmt.Sprintf("✓ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds a helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\ncommand '%s' not found, please install it and try again", err, cmd)
}
