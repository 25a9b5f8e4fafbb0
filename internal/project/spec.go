package project

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/patterncraft/patterncraft/generator"
	"github.com/patterncraft/patterncraft/internal/generators/mvc"
)

// Options is the raw, unvalidated CLI input for project generation.
type Options struct {
	Pattern       string // positional: pattern name
	Directory     string // positional: directory the project is created in
	Name          string // positional: project display name
	PythonVersion string // positional: e.g. "python3.10"
	KivyVersion   string // positional: e.g. "2.1.0", "master", "stable"
	NameScreen    string // --name-screen
	Database      string // --database: "no", "firebase", "restdb"
	HotReload     string // --use-hotreload: "yes" or "no"
	Localization  string // --use-localization: "yes" or "no"
}

// Spec is the resolved, validated set of generation parameters.
// Created once by Validate and immutable thereafter.
type Spec struct {
	Pattern       string
	Path          string // destination: Directory joined with ProjectName
	ProjectName   string // display name with spaces removed
	PythonVersion string
	KivyVersion   string
	NameScreen    string // e.g. "UserLoginScreen"
	ModuleName    string // e.g. "user_login"
	Database      mvc.Backend
	HotReload     bool
	Localization  bool
}

// Manifest is the project.yml record written into every generated project.
type Manifest struct {
	Pattern       string `yaml:"pattern"`
	Project       string `yaml:"project"`
	Screen        string `yaml:"screen"`
	Module        string `yaml:"module"`
	PythonVersion string `yaml:"python_version"`
	KivyVersion   string `yaml:"kivy_version"`
	Database      string `yaml:"database"`
	HotReload     bool   `yaml:"hot_reload"`
	Localization  bool   `yaml:"localization"`
}

// ManifestOp returns the operation that writes the spec's project.yml into
// the generated tree.
func (s *Spec) ManifestOp() (*generator.WriteFileOp, error) {
	manifest := Manifest{
		Pattern:       s.Pattern,
		Project:       s.ProjectName,
		Screen:        s.NameScreen,
		Module:        s.ModuleName,
		PythonVersion: s.PythonVersion,
		KivyVersion:   s.KivyVersion,
		Database:      s.Database.String(),
		HotReload:     s.HotReload,
		Localization:  s.Localization,
	}

	content, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("marshaling project manifest: %w", err)
	}

	return &generator.WriteFileOp{
		Path:    filepath.Join(s.Path, "project.yml"),
		Content: content,
		Mode:    0644,
	}, nil
}

// parseYesNo maps the CLI's yes/no flag values to a bool. The empty string
// means "no".
func parseYesNo(flag, value string) (bool, error) {
	switch value {
	case "yes":
		return true, nil
	case "", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be 'yes' or 'no', got %q", flag, value)
	}
}
