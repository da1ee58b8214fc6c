// Package workspace owns the temporary directory one install run downloads
// and unpacks into.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

// Workspace is an exclusively-owned temporary directory. Callers must defer
// Remove immediately after New so cleanup runs on every exit path.
type Workspace struct {
	dir string
}

func New(prefix string) (*Workspace, error) {
	dir, err := os.MkdirTemp("", prefix+"-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temporary workspace")
	}
	print.Verb("created workspace", dir)
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path resolves a filename inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Remove deletes the workspace and everything in it. Safe to call more than
// once.
func (w *Workspace) Remove() {
	if w.dir == "" {
		return
	}
	if err := os.RemoveAll(w.dir); err != nil {
		print.Warn("failed to remove workspace", w.dir, "-", err)
		return
	}
	w.dir = ""
}
