// Package provision sets up the runtime environment of a generated project:
// the requirements manifest, the virtual environment, and the dependency
// installs delegated to external tooling.
//
// Every external invocation's exit status and output are captured and
// aggregated; a failing install is reported, not fatal, and leaves a
// project whose environment is incomplete.
package provision

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/patterncraft/patterncraft/exec"
	"github.com/patterncraft/patterncraft/generator"
)

const (
	kivyMasterArchive   = "https://github.com/kivy/kivy/archive/master.zip"
	kivymdMasterArchive = "https://github.com/kivymd/KivyMD/archive/master.zip"
)

// plainRequirements pins the UI framework and the widget library only.
const plainRequirements = `kivy==2.1.0
kivymd==1.0.0
`

// databaseRequirements adds the database wrapper dependencies.
const databaseRequirements = plainRequirements + `multitasking
firebase
firebase-admin
python_jwt
gcloud
sseclient
pycryptodome==3.4.3
requests_toolbelt
`

// firebaseDeps are installed into the virtual environment when the
// Firebase backend is selected.
var firebaseDeps = []string{
	"multitasking",
	"firebase",
	"firebase-admin",
	"python_jwt",
	"gcloud",
	"sseclient",
	"pycryptodome==3.4.3",
	"requests_toolbelt",
	"watchdog",
}

// Runner executes external provisioning commands. Every step goes through
// the spinner variant so long installs stay readable.
type Runner interface {
	CaptureWithSpinner(ctx context.Context, message, name string, args ...string) (*exec.Result, error)
}

// Options configures environment provisioning for one generated project.
type Options struct {
	ProjectPath   string
	PythonVersion string // e.g. "python3.10"
	KivyVersion   string // explicit version, "master", or "stable"
	Database      bool   // any database backend selected
	Firebase      bool   // the Firebase backend specifically
}

// Step records one provisioning invocation and its outcome.
type Step struct {
	Name   string
	Result *exec.Result // nil when the command could not run at all
	Err    error
}

// Ok reports whether the step's command ran and exited cleanly.
func (s Step) Ok() bool {
	return s.Err == nil && s.Result != nil && s.Result.Ok()
}

// Failed filters steps down to the ones that did not complete cleanly.
func Failed(steps []Step) []Step {
	var failed []Step
	for _, s := range steps {
		if !s.Ok() {
			failed = append(failed, s)
		}
	}
	return failed
}

// RequirementsOp returns the operation that writes the requirements
// manifest: one of two fixed blocks chosen by the database flag. The
// hot-reload generator appends its file-watching dependency afterwards.
func RequirementsOp(opts Options) *generator.WriteFileOp {
	content := plainRequirements
	if opts.Database {
		content = databaseRequirements
	}
	return &generator.WriteFileOp{
		Path:    filepath.Join(opts.ProjectPath, "requirements.txt"),
		Content: []byte(content),
		Mode:    0644,
	}
}

// Provisioner drives the external environment-setup tooling
type Provisioner struct {
	runner Runner
}

// New creates a provisioner that issues commands through runner
func New(runner Runner) *Provisioner {
	return &Provisioner{runner: runner}
}

// Provision creates the virtual environment and installs the declared
// dependencies. All steps run regardless of earlier failures; the returned
// slice records every outcome for the caller to report.
func (p *Provisioner) Provision(ctx context.Context, opts Options) []Step {
	var steps []Step

	run := func(name string, cmd string, args ...string) {
		result, err := p.runner.CaptureWithSpinner(ctx, name, cmd, args...)
		steps = append(steps, Step{Name: name, Result: result, Err: err})
	}

	venvPath := filepath.Join(opts.ProjectPath, "venv")
	venvPython := filepath.Join(venvPath, "bin", "python3")

	run("install virtualenv", opts.PythonVersion, "-m", "pip", "install", "virtualenv")
	run("create virtual environment", "virtualenv", "-p", opts.PythonVersion, venvPath)
	run("install kivy", venvPython, kivyInstallArgs(opts.KivyVersion)...)
	run("install kivymd", venvPython, "-m", "pip", "install", kivymdMasterArchive)
	run("install watchdog", venvPython, "-m", "pip", "install", "watchdog")
	if opts.Firebase {
		run("install database dependencies", venvPython,
			append([]string{"-m", "pip", "install"}, firebaseDeps...)...)
	}
	run("list installed packages", venvPython, "-m", "pip", "list")

	return steps
}

// kivyInstallArgs selects the pip arguments for the requested framework
// version: an exact pin, the master VCS archive, or the latest stable.
func kivyInstallArgs(version string) []string {
	install := []string{"-m", "pip", "install"}
	switch version {
	case "master":
		if runtime.GOOS == "darwin" {
			return append(install, fmt.Sprintf("kivy[base] @ %s", kivyMasterArchive))
		}
		return append(install, kivyMasterArchive)
	case "stable":
		return append(install, "kivy")
	default:
		return append(install, fmt.Sprintf("kivy==%s", version))
	}
}
