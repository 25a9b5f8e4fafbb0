// Package mvc fills the copied MVC skeleton with the project's names and
// feature fragments.
//
// Template files carry the ".py_tmp" placeholder extension and are rendered
// in place through named template keys; the scaffolder performs the final
// placeholder-extension rename pass once all files are filled.
package mvc

import (
	"fmt"
	"path/filepath"

	"github.com/patterncraft/patterncraft/generator"
)

// PlaceholderExt marks template files pending substitution. Every file
// carrying it must be renamed to ".py" before provisioning.
const PlaceholderExt = ".py_tmp"

// Data is the named key set available to the skeleton templates.
type Data struct {
	ProjectName  string // e.g. "MyMVCProject"
	NameScreen   string // e.g. "UserLoginScreen"
	ModuleName   string // e.g. "user_login"
	HasDatabase  bool
	HotReload    bool
	Localization bool
}

// Generator fills the template files of a copied MVC skeleton
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a new MVC template filler
func NewGenerator() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

// Generate renders every template file of the copied skeleton at projectPath
// and returns the operations that write the results, narrow the database
// backends, and rename placeholder files to the project's module name.
//
// The skeleton must already have been copied to projectPath; templates are
// read from the destination tree and filled in place, the same way the
// pattern's own Makefile is. A template referencing an unknown key fails
// the render and aborts generation.
func (g *Generator) Generate(projectPath string, data Data, db Backend) ([]generator.Operation, error) {
	var ops []generator.Operation

	// Entry point.
	mainOps, err := g.fillInPlace(filepath.Join(projectPath, "main"+PlaceholderExt), data)
	if err != nil {
		return nil, err
	}
	ops = append(ops, mainOps...)

	// Model: fill, rename to the module name, narrow the backends.
	modelPath := filepath.Join(projectPath, "Model", "first_screen"+PlaceholderExt)
	modelOps, err := g.fillInPlace(modelPath, data)
	if err != nil {
		return nil, err
	}
	ops = append(ops, modelOps...)
	ops = append(ops, &generator.RenameOp{
		OldPath: modelPath,
		NewPath: filepath.Join(projectPath, "Model", data.ModuleName+PlaceholderExt),
	})
	ops = append(ops, db.NarrowOps(filepath.Join(projectPath, "Model"))...)

	// Controller.
	controllerPath := filepath.Join(projectPath, "Controller", "first_screen"+PlaceholderExt)
	controllerOps, err := g.fillInPlace(controllerPath, data)
	if err != nil {
		return nil, err
	}
	ops = append(ops, controllerOps...)
	ops = append(ops, &generator.RenameOp{
		OldPath: controllerPath,
		NewPath: filepath.Join(projectPath, "Controller", data.ModuleName+PlaceholderExt),
	})

	// View layer: screens registry, base view, screen view and its kv rule.
	for _, name := range []string{"screens" + PlaceholderExt, "base_screen" + PlaceholderExt} {
		viewOps, err := g.fillInPlace(filepath.Join(projectPath, "View", name), data)
		if err != nil {
			return nil, err
		}
		ops = append(ops, viewOps...)
	}

	screenDir := filepath.Join(projectPath, "View", "FirstScreen")
	screenViewPath := filepath.Join(screenDir, "first_screen"+PlaceholderExt)
	screenViewOps, err := g.fillInPlace(screenViewPath, data)
	if err != nil {
		return nil, err
	}
	ops = append(ops, screenViewOps...)
	ops = append(ops, &generator.RenameOp{
		OldPath: screenViewPath,
		NewPath: filepath.Join(screenDir, data.ModuleName+PlaceholderExt),
	})

	kvPath := filepath.Join(screenDir, "first_screen.kv")
	kvOps, err := g.fillInPlace(kvPath, data)
	if err != nil {
		return nil, err
	}
	ops = append(ops, kvOps...)
	ops = append(ops, &generator.RenameOp{
		OldPath: kvPath,
		NewPath: filepath.Join(screenDir, data.ModuleName+".kv"),
	})

	// The screen directory takes the screen class name.
	ops = append(ops, &generator.RenameOp{
		OldPath: screenDir,
		NewPath: filepath.Join(projectPath, "View", data.NameScreen),
	})

	return ops, nil
}

// fillInPlace renders the template at path and writes the result back to it.
func (g *Generator) fillInPlace(path string, data Data) ([]generator.Operation, error) {
	content, err := g.renderer.RenderFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("filling %s: %w", path, err)
	}
	return []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: content, Mode: 0644},
	}, nil
}
