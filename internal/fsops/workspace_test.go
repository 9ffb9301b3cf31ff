package fsops_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/calebhays/devdesk/internal/fsops"
	"github.com/calebhays/devdesk/internal/safety"
)

func newWorkspace(t *testing.T) (*fsops.Workspace, string) {
	t.Helper()
	dir := t.TempDir()
	ws, err := fsops.NewWorkspace(dir)
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	return ws, ws.Root()
}

func TestReadFile_HappyPath(t *testing.T) {
	ws, dir := newWorkspace(t)
	want := "hello world"
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(want), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	got, err := ws.ReadFile("a.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != want {
		t.Fatalf("content mismatch: got %q want %q", got, want)
	}
}

func TestReadFile_DirectoryIsNotAFile(t *testing.T) {
	ws, dir := newWorkspace(t)
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	_, err := ws.ReadFile("sub")
	if err == nil {
		t.Fatal("expected error for directory target")
	}
	var pe safety.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PathError, got %T: %v", err, err)
	}
	if pe.Code != "ERR_NOT_A_FILE" {
		t.Fatalf("unexpected code: %s", pe.Code)
	}
}

func TestReadFile_MissingFileIsPlainIOError(t *testing.T) {
	ws, _ := newWorkspace(t)

	_, err := ws.ReadFile("nope.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var pe safety.PathError
	if errors.As(err, &pe) {
		t.Fatalf("missing file must not be a policy error: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadFile_EscapeRejected(t *testing.T) {
	ws, _ := newWorkspace(t)

	_, err := ws.ReadFile("../outside.txt")
	if err == nil {
		t.Fatal("expected reject for traversal outside root")
	}
	var pe safety.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PathError, got %T: %v", err, err)
	}
	if pe.Code != "ERR_PATH_OUTSIDE_ROOT" {
		t.Fatalf("unexpected code: %s", pe.Code)
	}
}

func TestNewWorkspace_EmptyRootDefaultsToCwd(t *testing.T) {
	ws, err := fsops.NewWorkspace("")
	if err != nil {
		t.Fatalf("NewWorkspace(\"\"): %v", err)
	}
	if ws.Root() == "" || !filepath.IsAbs(ws.Root()) {
		t.Fatalf("expected absolute root, got %q", ws.Root())
	}
}
