// Package fsops performs file reads under an explicit project root.
package fsops

import (
	"os"

	"github.com/calebhays/devdesk/internal/safety"
)

// Workspace binds file access to one resolved project root. It is constructed
// once from configuration and passed to the tools that take caller-supplied
// paths; there is no process-wide root state.
type Workspace struct {
	root string
}

// NewWorkspace resolves root (empty means the working directory) and returns
// a workspace bound to it.
func NewWorkspace(root string) (*Workspace, error) {
	abs, err := safety.ResolveRoot(root)
	if err != nil {
		return nil, err
	}
	return &Workspace{root: abs}, nil
}

// Root returns the absolute project root.
func (w *Workspace) Root() string { return w.root }

// ReadFile reads a file addressed by a relative path under the project root.
// It validates the path via safety and returns a PathError JSON on policy
// violations; plain I/O errors (such as a missing file) pass through.
func (w *Workspace) ReadFile(relPath string) (string, error) {
	absPath, err := safety.ResolveUnder(w.root, relPath)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", safety.PathError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
