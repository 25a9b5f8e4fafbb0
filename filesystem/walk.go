package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are directories that never contain template output
var DefaultIgnoreDirs = []string{
	".git", ".svn", ".hg", ".idea", ".vscode", "venv", "__pycache__",
}

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File patterns to skip (e.g., "*.pyc")
	IncludeHidden  bool     // Include hidden files/dirs (default: false)
}

// Walk traverses a directory tree with configurable ignore patterns.
// The visitor function is called for each file and directory.
// Return filepath.SkipDir from visitor to skip a directory.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	ignoreDirs := opts.IgnoreDirs
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden files/directories unless explicitly included
		if !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") && path != rootPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			for _, ignore := range ignoreDirs {
				if info.Name() == ignore {
					return filepath.SkipDir
				}
			}
		}

		if !info.IsDir() && len(opts.IgnorePatterns) > 0 {
			for _, pattern := range opts.IgnorePatterns {
				if matched, _ := filepath.Match(pattern, info.Name()); matched {
					return nil
				}
			}
		}

		return visitor(path, info)
	})
}

// RenameExt walks rootPath once and renames every file carrying oldExt to
// newExt. Template trees mark files pending substitution with a placeholder
// extension (".py_tmp"); after filling, this pass turns them into real
// source files. Returns the number of files renamed.
func RenameExt(rootPath, oldExt, newExt string) (int, error) {
	renamed := 0
	err := Walk(rootPath, WalkOptions{}, func(path string, info os.FileInfo) error {
		if info.IsDir() || !strings.HasSuffix(path, oldExt) {
			return nil
		}
		target := strings.TrimSuffix(path, oldExt) + newExt
		if err := os.Rename(path, target); err != nil {
			return fmt.Errorf("renaming %s: %w", path, err)
		}
		renamed++
		return nil
	})
	return renamed, err
}

// FindExt returns every file under rootPath carrying the given extension.
// Used to verify that no placeholder-extension file survives generation.
func FindExt(rootPath, ext string) ([]string, error) {
	var found []string
	err := Walk(rootPath, WalkOptions{}, func(path string, info os.FileInfo) error {
		if !info.IsDir() && strings.HasSuffix(path, ext) {
			found = append(found, path)
		}
		return nil
	})
	return found, err
}
