package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating parent directories).
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create Model/main_window.py (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a file with content.
//
// Validation behavior:
//   - Creates parent directories if they don't exist (via os.MkdirAll)
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// AppendFileOp appends content to an existing file.
type AppendFileOp struct {
	Path    string
	Content []byte
}

func (op *AppendFileOp) Validate(ctx context.Context, force bool) error {
	if _, err := os.Stat(op.Path); err != nil {
		return fmt.Errorf("cannot append to %s: %w", op.Path, err)
	}
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *AppendFileOp) Execute(ctx context.Context) error {
	f, err := os.OpenFile(op.Path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(op.Content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (op *AppendFileOp) Description() string {
	return fmt.Sprintf("Append to %s (%d bytes)", op.Path, len(op.Content))
}

// CopyTreeOp copies a directory tree from a source filesystem (typically an
// embed.FS) to a destination directory on disk. The destination must not
// exist unless force=true.
type CopyTreeOp struct {
	Source fs.FS
	Root   string // Root of the tree inside Source
	Dest   string // Destination directory on disk
}

func (op *CopyTreeOp) Validate(ctx context.Context, force bool) error {
	if _, err := fs.Stat(op.Source, op.Root); err != nil {
		return fmt.Errorf("template tree %s not found: %w", op.Root, err)
	}
	if !force {
		if _, err := os.Stat(op.Dest); err == nil {
			return fmt.Errorf("destination already exists: %s", op.Dest)
		}
	}
	return nil
}

func (op *CopyTreeOp) Execute(ctx context.Context) error {
	return fs.WalkDir(op.Source, op.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(op.Root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(op.Dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		// .gitkeep markers only hold empty directories in the template
		// tree; generated projects get the directory without the marker.
		if d.Name() == ".gitkeep" {
			return os.MkdirAll(filepath.Dir(target), 0755)
		}
		data, err := fs.ReadFile(op.Source, path)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", path, err)
		}
		return os.WriteFile(target, data, 0644)
	})
}

func (op *CopyTreeOp) Description() string {
	return fmt.Sprintf("Copy template tree to %s", op.Dest)
}

// RenameOp renames a file or directory.
type RenameOp struct {
	OldPath string
	NewPath string
}

func (op *RenameOp) Validate(ctx context.Context, force bool) error {
	if _, err := os.Stat(op.OldPath); err != nil {
		return fmt.Errorf("cannot rename %s: %w", op.OldPath, err)
	}
	if !force {
		if _, err := os.Stat(op.NewPath); err == nil {
			return fmt.Errorf("rename target already exists: %s", op.NewPath)
		}
	}
	return nil
}

func (op *RenameOp) Execute(ctx context.Context) error {
	return os.Rename(op.OldPath, op.NewPath)
}

func (op *RenameOp) Description() string {
	return fmt.Sprintf("Rename %s -> %s", op.OldPath, op.NewPath)
}

// RemoveOp deletes a single file.
type RemoveOp struct {
	Path string
}

func (op *RemoveOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		return fmt.Errorf("cannot remove %s: %w", op.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, use RemoveTreeOp", op.Path)
	}
	return nil
}

func (op *RemoveOp) Execute(ctx context.Context) error {
	return os.Remove(op.Path)
}

func (op *RemoveOp) Description() string {
	return fmt.Sprintf("Remove %s", op.Path)
}

// RemoveTreeOp deletes a directory and everything under it.
type RemoveTreeOp struct {
	Path string
}

func (op *RemoveTreeOp) Validate(ctx context.Context, force bool) error {
	if _, err := os.Stat(op.Path); err != nil {
		return fmt.Errorf("cannot remove %s: %w", op.Path, err)
	}
	return nil
}

func (op *RemoveTreeOp) Execute(ctx context.Context) error {
	return os.RemoveAll(op.Path)
}

func (op *RemoveTreeOp) Description() string {
	return fmt.Sprintf("Remove tree %s", op.Path)
}

// MkdirOp creates a directory and any missing parents.
type MkdirOp struct {
	Path string
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if op.Path == "" {
		return fmt.Errorf("mkdir path is empty")
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, 0755)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}
