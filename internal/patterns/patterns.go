// Package patterns holds the embedded project-skeleton templates.
//
// A pattern is a complete directory tree; files pending substitution carry
// the ".py_tmp" placeholder extension and contain text/template actions
// filled by the generators.
package patterns

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed all:templates
var templatesFS embed.FS

// MVC is the Model-View-Controller pattern, currently the only one shipped.
const MVC = "MVC"

var roots = map[string]string{
	MVC: "templates/MVC",
}

// Has reports whether a pattern with the given name exists.
func Has(name string) bool {
	_, ok := roots[name]
	return ok
}

// Names returns all shipped pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tree returns the filesystem and root path of a pattern's skeleton.
func Tree(name string) (fs.FS, string, bool) {
	root, ok := roots[name]
	if !ok {
		return nil, "", false
	}
	return templatesFS, root, true
}
