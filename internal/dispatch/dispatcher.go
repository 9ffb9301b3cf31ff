package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calebhays/devdesk/internal/telemetry"
)

// Dispatcher validates and executes single invocations against a Registry.
// It is stateless aside from reading the registry: side effects are confined
// to whatever the invoked handler does.
type Dispatcher struct {
	reg *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Invoke looks up the named operation, validates args against its declared
// schema, and runs the handler synchronously. Every outcome, including a
// handler panic, is normalised into a Result; nothing escapes to crash the
// process.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (res Result) {
	start := time.Now()

	// Correlate with the caller's ID when the host set one on the context.
	callID, ok := telemetry.CallIDFromContext(ctx)
	if !ok {
		callID = fmt.Sprintf("call-%d", time.Now().UnixNano())
	}
	defer func() {
		outcome := "success"
		if !res.OK {
			outcome = string(res.Kind)
		}
		// Emit outcome kind only, to avoid leaking payloads into telemetry.
		telemetry.Emit("tool_invoked", map[string]any{
			"tool_name":   name,
			"call_id":     callID,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(args),
			"outcome":     outcome,
		})
	}()

	def, found := d.reg.Get(name)
	if !found {
		return Failure(KindUnknownOperation, fmt.Sprintf("unknown operation %q", name))
	}

	if failure, ok := validateArgs(def.InputSchema, args); !ok {
		return failure
	}

	payload, err := execute(def.Handler, args)
	if err != nil {
		return Failure(KindHandlerError, err.Error())
	}
	return Success(payload)
}

// execute runs a handler, converting a panic into an ordinary error.
func execute(h HandlerFunc, args json.RawMessage) (payload string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h(args)
}
