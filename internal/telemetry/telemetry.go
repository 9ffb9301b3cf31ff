// Package telemetry emits optional local JSONL events for observing tool
// invocations. Emission is off unless DEVDESK_OBSERVE_JSON=1; stdout is never
// touched because it carries the protocol stream.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// isObserveEnabled checks if JSONL emission is enabled.
func isObserveEnabled() bool {
	return os.Getenv("DEVDESK_OBSERVE_JSON") == "1"
}

const eventDirName = ".devdesk"

var eventDir = eventDirName

// SetRoot anchors the event directory under the given project root, keeping
// event files alongside the other server-owned data. Call once at startup,
// before any Emit.
func SetRoot(root string) {
	eventDir = filepath.Join(root, eventDirName)
}

// Emit writes a single JSON line to .devdesk/events.jsonl when
// DEVDESK_OBSERVE_JSON=1. It augments fields with RFC3339Nano time and the
// event name.
func Emit(name string, fields map[string]any) {
	if !isObserveEnabled() {
		return
	}

	// Make a shallow copy so callers' maps aren't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	if err := os.MkdirAll(eventDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", eventDir, err)
		return
	}

	path := filepath.Join(eventDir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
		return
	}
}
