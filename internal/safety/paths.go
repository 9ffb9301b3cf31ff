// Package safety confines caller-supplied paths to the configured project root.
package safety

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathError is a machine-readable error body for surfacing back to the caller as JSON.
type PathError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact, single-line JSON string to keep result payloads small.
func (e PathError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// ResolveRoot makes the project root absolute and resolves symlinks so later
// boundary checks are reliable. An empty root defaults to the working directory.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		root = cwd
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("abs(root): %w", err)
	}

	// If EvalSymlinks fails (e.g., non-existent), fall back to the absolute path as-is.
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}
	return root, nil
}

// ResolveUnder resolves relPath against absRoot and returns an absolute path
// inside the project root. It rejects absolute inputs, parent traversal, and
// symlink escapes. On violation, returns a PathError.
func ResolveUnder(absRoot, relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", PathError{Code: "ERR_PATH_OUTSIDE_ROOT", Message: "absolute paths are not allowed"}
	}

	cleaned := filepath.Clean(relPath)
	if cleaned == "" {
		cleaned = "."
	}

	candidate := filepath.Join(absRoot, cleaned)

	// Best-effort symlink resolution.
	// 1) Resolve the whole candidate if it exists.
	// 2) Otherwise, resolve the parent and rejoin the final segment so an
	//    escape via a symlinked parent is still revealed.
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		candidate = resolved
	} else {
		parent := filepath.Dir(candidate)
		if resolvedParent, err2 := filepath.EvalSymlinks(parent); err2 == nil {
			candidate = filepath.Join(resolvedParent, filepath.Base(candidate))
		}
	}

	// Boundary check using filepath.Rel (robust against partial prefix matches)
	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", PathError{Code: "ERR_PATH_OUTSIDE_ROOT", Message: "requested path resolves outside the project root"}
	}

	return candidate, nil
}
