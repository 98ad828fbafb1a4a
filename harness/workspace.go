package harness

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the disposable directory tree owned by one benchmark run:
// csvs/ holds the generated fixture files, project/ is the target tool's
// working project.
type Workspace struct {
	Root       string
	DataDir    string
	ProjectDir string
}

// Provision creates a fresh, uniquely named workspace. Prior workspaces are
// never reused. The tree is left behind after the run for inspection;
// callers opting into cleanup call Remove.
func Provision() (*Workspace, error) {
	root, err := os.MkdirTemp("", "tracebench-")
	if err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}

	ws := &Workspace{
		Root:       root,
		DataDir:    filepath.Join(root, "csvs"),
		ProjectDir: filepath.Join(root, "project"),
	}

	for _, dir := range []string{ws.DataDir, ws.ProjectDir} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	return ws, nil
}

// Remove deletes the whole workspace tree.
func (w *Workspace) Remove() error {
	return os.RemoveAll(w.Root)
}
