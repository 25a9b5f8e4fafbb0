// Package hotreload replaces the plain application entry point with a
// hot-reload-capable one. The original entry point is preserved beneath it,
// fully commented out, so the developer can switch back by hand when the
// project is finished.
package hotreload

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patterncraft/patterncraft/generator"
)

//go:embed templates/main.py.tmpl
var templatesFS embed.FS

// Data is the named key set for the hot-reload entry-point template.
type Data struct {
	ProjectName  string
	NameScreen   string
	ModuleName   string
	HasDatabase  bool
	Localization bool
}

// Generator rewrites main.py for hot reloading
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a new hot-reload entry-point generator
func NewGenerator() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

// Rewrite returns the operations that replace projectPath/main.py with the
// hot-reload entry point followed by the original content commented out,
// and add the file-watching dependency to the requirements manifest.
//
// Must run after the placeholder-extension rename pass, because it reads
// the final main.py.
func (g *Generator) Rewrite(projectPath string, data Data) ([]generator.Operation, error) {
	mainPath := filepath.Join(projectPath, "main.py")
	original, err := os.ReadFile(mainPath)
	if err != nil {
		return nil, fmt.Errorf("reading entry point: %w", err)
	}

	rendered, err := g.renderer.RenderFS(templatesFS, "templates/main.py.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("rendering hot-reload entry point: %w", err)
	}

	content := append(rendered, '\n')
	content = append(content, CommentOut(string(original))...)

	return []generator.Operation{
		&generator.WriteFileOp{Path: mainPath, Content: content, Mode: 0644},
		&generator.AppendFileOp{
			Path:    filepath.Join(projectPath, "requirements.txt"),
			Content: []byte("watchdog\n"),
		},
	}, nil
}

// CommentOut prefixes every line of source with a Python comment marker.
func CommentOut(source string) []byte {
	var b strings.Builder
	for _, line := range strings.SplitAfter(source, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("# ")
		b.WriteString(line)
	}
	return []byte(b.String())
}
