package tools_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/fsops"
	"github.com/calebhays/devdesk/internal/taskstore"
	"github.com/calebhays/devdesk/internal/worklog"
	"github.com/calebhays/devdesk/tools"
)

// harness wires a full registry and dispatcher against temp-dir collaborators,
// mirroring the composition in cmd/devdesk.
type harness struct {
	root string
	disp *dispatch.Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()

	ws, err := fsops.NewWorkspace(dir)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	store, err := taskstore.Open(filepath.Join(dir, "tasks.db"))
	if err != nil {
		t.Fatalf("task store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	deps := tools.Deps{
		Workspace: ws,
		WorkLog:   worklog.New(filepath.Join(dir, "work_log.txt")),
		Tasks:     store,
	}

	reg := dispatch.NewRegistry()
	for _, def := range tools.Registry(deps) {
		if err := reg.Register(def); err != nil {
			t.Fatalf("register %s: %v", def.Name, err)
		}
	}
	return &harness{root: ws.Root(), disp: dispatch.NewDispatcher(reg)}
}

// registryDefs builds the full definition set against fresh temp-dir deps.
func registryDefs(t *testing.T) []dispatch.Definition {
	t.Helper()
	dir := t.TempDir()

	ws, err := fsops.NewWorkspace(dir)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	store, err := taskstore.Open(filepath.Join(dir, "tasks.db"))
	if err != nil {
		t.Fatalf("task store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return tools.Registry(tools.Deps{
		Workspace: ws,
		WorkLog:   worklog.New(filepath.Join(dir, "work_log.txt")),
		Tasks:     store,
	})
}

func (h *harness) invoke(t *testing.T, name, args string) dispatch.Result {
	t.Helper()
	return h.disp.Invoke(context.Background(), name, json.RawMessage(args))
}

// invokeOK fails the test unless the invocation succeeds, then unmarshals the
// JSON payload into out.
func (h *harness) invokeOK(t *testing.T, name, args string, out any) {
	t.Helper()
	res := h.invoke(t, name, args)
	if !res.OK {
		t.Fatalf("%s(%s): %s: %s", name, args, res.Kind, res.Message)
	}
	if out == nil {
		return
	}
	if err := json.Unmarshal([]byte(res.Payload), out); err != nil {
		t.Fatalf("%s payload %q: %v", name, res.Payload, err)
	}
}
