package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/patterncraft/patterncraft/exec"
	"github.com/patterncraft/patterncraft/filesystem"
	"github.com/patterncraft/patterncraft/generator"
	"github.com/patterncraft/patterncraft/internal/generators/hotreload"
	"github.com/patterncraft/patterncraft/internal/generators/locale"
	"github.com/patterncraft/patterncraft/internal/generators/mvc"
	"github.com/patterncraft/patterncraft/internal/patterns"
	"github.com/patterncraft/patterncraft/internal/provision"
	"github.com/patterncraft/patterncraft/output"
)

// Runner executes the external tooling the scaffolder delegates to.
// *exec.Executor satisfies it; tests substitute a recorder.
type Runner interface {
	Capture(ctx context.Context, name string, args ...string) (*exec.Result, error)
	CaptureWithSpinner(ctx context.Context, message, name string, args ...string) (*exec.Result, error)
}

var _ Runner = (*exec.Executor)(nil)

// Scaffolder generates a project from a validated Spec
type Scaffolder struct {
	runner Runner
}

// NewScaffolder creates a project scaffolder
func NewScaffolder(runner Runner) *Scaffolder {
	return &Scaffolder{runner: runner}
}

// Scaffold creates the project described by spec: copies the pattern
// skeleton, fills and renames the template files, prunes unselected
// features, and provisions the environment. Generation failures are fatal;
// provisioning failures are aggregated and reported as warnings.
func (s *Scaffolder) Scaffold(ctx context.Context, spec *Spec) error {
	src, root, ok := patterns.Tree(spec.Pattern)
	if !ok {
		return fmt.Errorf("there is no %q pattern", spec.Pattern)
	}

	// Copy the skeleton. The validator guarantees the destination is new.
	copyOps := []generator.Operation{
		&generator.CopyTreeOp{Source: src, Root: root, Dest: spec.Path},
	}
	if err := generator.Execute(ctx, copyOps, generator.ExecuteOptions{}); err != nil {
		return fmt.Errorf("copying pattern skeleton: %w", err)
	}

	// Fill the template files in place and narrow the feature variants.
	// Force: the operations rewrite files the copy just created.
	data := mvc.Data{
		ProjectName:  spec.ProjectName,
		NameScreen:   spec.NameScreen,
		ModuleName:   spec.ModuleName,
		HasDatabase:  spec.Database != mvc.BackendNone,
		HotReload:    spec.HotReload,
		Localization: spec.Localization,
	}
	fillOps, err := mvc.NewGenerator().Generate(spec.Path, data, spec.Database)
	if err != nil {
		return fmt.Errorf("filling templates: %w", err)
	}
	if err := generator.Execute(ctx, fillOps, generator.ExecuteOptions{Force: true}); err != nil {
		return fmt.Errorf("filling templates: %w", err)
	}

	// One tree-walk renames every placeholder-extension file. After this
	// point no ".py_tmp" file may remain.
	renamed, err := filesystem.RenameExt(spec.Path, mvc.PlaceholderExt, ".py")
	if err != nil {
		return fmt.Errorf("renaming placeholder files: %w", err)
	}
	output.Verbose(fmt.Sprintf("Renamed %d placeholder files", renamed))

	// Requirements manifest goes in before the hot-reload rewrite so the
	// file-watching dependency has a file to land in.
	reqOps := []generator.Operation{provision.RequirementsOp(s.provisionOptions(spec))}
	if err := generator.Execute(ctx, reqOps, generator.ExecuteOptions{Force: true}); err != nil {
		return fmt.Errorf("writing requirements manifest: %w", err)
	}

	if spec.HotReload {
		hotOps, err := hotreload.NewGenerator().Rewrite(spec.Path, hotreload.Data{
			ProjectName:  spec.ProjectName,
			NameScreen:   spec.NameScreen,
			ModuleName:   spec.ModuleName,
			HasDatabase:  spec.Database != mvc.BackendNone,
			Localization: spec.Localization,
		})
		if err != nil {
			return fmt.Errorf("rewriting entry point: %w", err)
		}
		if err := generator.Execute(ctx, hotOps, generator.ExecuteOptions{Force: true}); err != nil {
			return fmt.Errorf("rewriting entry point: %w", err)
		}
	}

	var catalogResults []*exec.Result
	if spec.Localization {
		output.Info("Creating localization files...")
		seeder := locale.NewSeeder(s.runner)
		makeOps, err := seeder.MakefileOps(spec.Path, locale.Data{
			ProjectName: spec.ProjectName,
			NameScreen:  spec.NameScreen,
			ModuleName:  spec.ModuleName,
		})
		if err != nil {
			return fmt.Errorf("filling Makefile: %w", err)
		}
		if err := generator.Execute(ctx, makeOps, generator.ExecuteOptions{Force: true}); err != nil {
			return fmt.Errorf("filling Makefile: %w", err)
		}
		catalogResults, err = seeder.Seed(ctx, spec.Path)
		if err != nil {
			return fmt.Errorf("seeding message catalog: %w", err)
		}
	} else {
		pruneOps := locale.PruneOps(spec.Path)
		if err := generator.Execute(ctx, pruneOps, generator.ExecuteOptions{}); err != nil {
			return fmt.Errorf("pruning localization scaffold: %w", err)
		}
	}

	manifestOp, err := spec.ManifestOp()
	if err != nil {
		return err
	}
	if err := generator.Execute(ctx, []generator.Operation{manifestOp}, generator.ExecuteOptions{}); err != nil {
		return fmt.Errorf("writing project manifest: %w", err)
	}

	output.Info(fmt.Sprintf("Project %s created", spec.Path))
	output.Info(fmt.Sprintf("Creating a virtual environment for %s...", spec.Path))

	steps := provision.New(s.runner).Provision(ctx, s.provisionOptions(spec))
	s.report(steps, catalogResults)

	return nil
}

// provisionOptions maps the spec to the provisioner's inputs.
func (s *Scaffolder) provisionOptions(spec *Spec) provision.Options {
	return provision.Options{
		ProjectPath:   spec.Path,
		PythonVersion: spec.PythonVersion,
		KivyVersion:   spec.KivyVersion,
		Database:      spec.Database != mvc.BackendNone,
		Firebase:      spec.Database == mvc.BackendFirebase,
	}
}

// report surfaces every external invocation that did not complete cleanly.
// An incomplete environment is reported, not fatal: the project tree itself
// was generated.
func (s *Scaffolder) report(steps []provision.Step, catalogResults []*exec.Result) {
	for _, res := range catalogResults {
		if !res.Ok() {
			output.Warn(fmt.Sprintf("catalog build failed (exit %d): %s", res.ExitCode, res.Command))
			if out := strings.TrimSpace(res.Output); out != "" {
				output.Step(out)
			}
		}
	}

	failed := provision.Failed(steps)
	if len(failed) == 0 {
		return
	}
	output.Warn(fmt.Sprintf("%d provisioning step(s) failed, the environment is incomplete:", len(failed)))
	for _, step := range failed {
		if step.Err != nil {
			output.Step(fmt.Sprintf("%s: %v", step.Name, step.Err))
			continue
		}
		output.Step(fmt.Sprintf("%s: exit %d (%s)", step.Name, step.Result.ExitCode, step.Result.Command))
	}
}
