package mvc

import (
	"fmt"
	"path/filepath"

	"github.com/patterncraft/patterncraft/generator"
)

// Backend is the closed set of database backends a pattern can ship
type Backend int

const (
	// BackendNone generates the pattern without a database wrapper.
	BackendNone Backend = iota
	// BackendFirebase keeps the Firebase realtime-database wrapper.
	BackendFirebase
	// BackendRestDB keeps the restdb.io wrapper.
	BackendRestDB
)

// ParseBackend maps a CLI database identifier to a Backend. The empty
// string and "no" both mean no database.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "", "no":
		return BackendNone, nil
	case "firebase":
		return BackendFirebase, nil
	case "restdb":
		return BackendRestDB, nil
	default:
		return BackendNone, fmt.Errorf("unknown database %q, must be one of 'firebase' or 'restdb'", s)
	}
}

func (b Backend) String() string {
	switch b {
	case BackendFirebase:
		return "firebase"
	case BackendRestDB:
		return "restdb"
	default:
		return "no"
	}
}

// moduleFile returns the backend's source file name inside Model/.
func (b Backend) moduleFile() string {
	switch b {
	case BackendFirebase:
		return "database_firebase.py"
	case BackendRestDB:
		return "database_restdb.py"
	default:
		return ""
	}
}

// NarrowOps returns the operations that reduce the skeleton's backend
// modules to the selected one. With no backend selected both modules are
// deleted; otherwise the unchosen one is deleted and the chosen one renamed
// to the canonical Model/database.py that the filled templates import.
func (b Backend) NarrowOps(modelDir string) []generator.Operation {
	firebase := filepath.Join(modelDir, BackendFirebase.moduleFile())
	restdb := filepath.Join(modelDir, BackendRestDB.moduleFile())
	canonical := filepath.Join(modelDir, "database.py")

	switch b {
	case BackendFirebase:
		return []generator.Operation{
			&generator.RemoveOp{Path: restdb},
			&generator.RenameOp{OldPath: firebase, NewPath: canonical},
		}
	case BackendRestDB:
		return []generator.Operation{
			&generator.RemoveOp{Path: firebase},
			&generator.RenameOp{OldPath: restdb, NewPath: canonical},
		}
	default:
		return []generator.Operation{
			&generator.RemoveOp{Path: firebase},
			&generator.RemoveOp{Path: restdb},
		}
	}
}
