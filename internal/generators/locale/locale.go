// Package locale seeds the localization scaffold of a generated project.
//
// The pattern ships an English source with a Russian catalog; seeding is an
// explicit fixture step that writes four fixed phrase translations into the
// extracted message file, not a generic translation mechanism.
package locale

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patterncraft/patterncraft/exec"
	"github.com/patterncraft/patterncraft/generator"
)

// Translations are the fixed Russian phrase translations seeded into the
// extracted catalog.
var Translations = map[string]string{
	"To log in, enter your personal data:": "Для входа введите свои личные данные",
	"Login":                                "Логин",
	"Password":                             "Пароль",
	"LOGIN":                                "ЛОГИН",
}

// Runner executes the message-catalog make targets.
type Runner interface {
	Capture(ctx context.Context, name string, args ...string) (*exec.Result, error)
}

// Data is the named key set for the Makefile template.
type Data struct {
	ProjectName string
	NameScreen  string
	ModuleName  string
}

// Seeder builds the catalog and seeds the Russian translations
type Seeder struct {
	renderer *generator.Renderer
	runner   Runner
}

// NewSeeder creates a catalog seeder
func NewSeeder(runner Runner) *Seeder {
	return &Seeder{
		renderer: generator.NewRenderer(),
		runner:   runner,
	}
}

// MakefileOps fills the copied Makefile with the project's names so its
// po/mo targets address the generated screen files.
func (s *Seeder) MakefileOps(projectPath string, data Data) ([]generator.Operation, error) {
	path := filepath.Join(projectPath, "Makefile")
	content, err := s.renderer.RenderFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("filling Makefile: %w", err)
	}
	return []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: content, Mode: 0644},
	}, nil
}

// Seed extracts the message catalog, patches the Russian source catalog
// with the fixed phrase translations, and compiles the catalog. Command
// results are returned for the caller to report; a failed make target does
// not stop the seeding of the shipped catalog.
func (s *Seeder) Seed(ctx context.Context, projectPath string) ([]*exec.Result, error) {
	var results []*exec.Result

	extract, err := s.runner.Capture(ctx, "make", "-C", projectPath, "po")
	if err != nil {
		return results, fmt.Errorf("extracting message catalog: %w", err)
	}
	results = append(results, extract)

	poPath := filepath.Join(projectPath, "data", "locales", "po", "ru.po")
	if err := SeedCatalog(poPath); err != nil {
		return results, err
	}

	compile, err := s.runner.Capture(ctx, "make", "-C", projectPath, "mo")
	if err != nil {
		return results, fmt.Errorf("compiling message catalog: %w", err)
	}
	results = append(results, compile)

	return results, nil
}

// SeedCatalog writes the fixed phrase translations into the po file at
// path, replacing each phrase's empty msgstr.
func SeedCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	content := string(data)
	for phrase, translation := range Translations {
		content = strings.ReplaceAll(
			content,
			fmt.Sprintf("msgid %q\nmsgstr \"\"", phrase),
			fmt.Sprintf("msgid %q\nmsgstr %q", phrase, translation),
		)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// PruneOps returns the operations that remove the localization scaffold
// when localization is not selected: the message catalog template, the
// translation helper module, the locale data directory, and the Makefile
// whose only targets build catalogs.
func PruneOps(projectPath string) []generator.Operation {
	return []generator.Operation{
		&generator.RemoveOp{Path: filepath.Join(projectPath, "messages.pot")},
		&generator.RemoveOp{Path: filepath.Join(projectPath, "libs", "translation.py")},
		&generator.RemoveTreeOp{Path: filepath.Join(projectPath, "data")},
		&generator.RemoveOp{Path: filepath.Join(projectPath, "Makefile")},
	}
}
