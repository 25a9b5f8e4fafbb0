// Package exec runs the external tooling a generated project depends on:
// virtualenv builders, pip, and the message-catalog make targets.
//
// Capture records a command's exit code and combined output in a Result
// without treating a non-zero exit as an error, which lets callers aggregate
// environment-provisioning failures and report them at the end instead of
// aborting a half-built project.
//
//	executor := exec.NewExecutor(nil)
//	res, err := executor.Capture(ctx, "virtualenv", "-p", "python3.10", "venv")
//	if err == nil && !res.Ok() {
//		// non-zero exit: res.ExitCode, res.Output
//	}
//
// CaptureWithSpinner wraps Capture with a bubbletea spinner for long steps.
package exec
