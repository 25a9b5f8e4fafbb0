package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/patterncraft/patterncraft/generator"
	"github.com/patterncraft/patterncraft/internal/generators/mvc"
	"github.com/patterncraft/patterncraft/internal/patterns"
)

// ScreenSuffix is the required trailing word of every screen class name.
const ScreenSuffix = "Screen"

// Validate checks every argument and resolves a Spec. It runs to completion
// before any filesystem mutation: a returned error guarantees nothing was
// created.
func Validate(opts Options) (*Spec, error) {
	if !patterns.Has(opts.Pattern) {
		return nil, fmt.Errorf("there is no %q pattern, only %v are available",
			opts.Pattern, patterns.Names())
	}

	if !strings.Contains(opts.PythonVersion, "3") {
		return nil, fmt.Errorf("python must be at least version 3, got %q (specify as 'python3.10')",
			opts.PythonVersion)
	}

	if err := validateKivyVersion(opts.KivyVersion); err != nil {
		return nil, err
	}

	moduleName, err := ModuleName(opts.NameScreen)
	if err != nil {
		return nil, err
	}

	database, err := mvc.ParseBackend(opts.Database)
	if err != nil {
		return nil, err
	}

	hotReload, err := parseYesNo("--use-hotreload", opts.HotReload)
	if err != nil {
		return nil, err
	}

	localization, err := parseYesNo("--use-localization", opts.Localization)
	if err != nil {
		return nil, err
	}

	projectName := strings.Join(strings.Fields(opts.Name), "")
	if projectName == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}

	path := filepath.Join(opts.Directory, projectName)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("the %s project already exists", path)
	}

	return &Spec{
		Pattern:       opts.Pattern,
		Path:          path,
		ProjectName:   projectName,
		PythonVersion: opts.PythonVersion,
		KivyVersion:   opts.KivyVersion,
		NameScreen:    opts.NameScreen,
		ModuleName:    moduleName,
		Database:      database,
		HotReload:     hotReload,
		Localization:  localization,
	}, nil
}

// ModuleName derives the generated module name from a screen class name.
//
// The name must end in "Screen" and the part before the suffix must be
// upper camel case with at least two words: "UserLoginScreen" yields
// "user_login", while "LoginScreen" is rejected because "Login" is a
// single word.
func ModuleName(nameScreen string) (string, error) {
	if !strings.HasSuffix(nameScreen, ScreenSuffix) {
		return "", fmt.Errorf(
			"name of the screen must contain the word 'Screen' at the end, for example 'UserLoginScreen'")
	}

	base := strings.TrimSuffix(nameScreen, ScreenSuffix)
	words := generator.CamelWords(base)
	if len(words) < 2 {
		return "", fmt.Errorf(
			"the name of the screen must be written in camel case style with at least two words before 'Screen', for example 'UserLoginScreen'")
	}

	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_"), nil
}

// validateKivyVersion accepts "master", "stable", or an explicit version.
func validateKivyVersion(version string) error {
	if version == "master" || version == "stable" {
		return nil
	}
	if !semver.IsValid("v" + version) {
		return fmt.Errorf("kivy version must be 'master', 'stable', or a release version like '2.1.0', got %q",
			version)
	}
	return nil
}
