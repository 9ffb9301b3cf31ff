package dispatch

import (
	"errors"
	"fmt"
)

// ErrDuplicateOperation reports an attempt to register a name twice.
var ErrDuplicateOperation = errors.New("duplicate operation")

// Registry owns the fixed set of operation definitions. Registration happens
// once during startup composition; afterwards the set is read-only.
type Registry struct {
	defs   []Definition
	byName map[string]int
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]int{}}
}

// Register adds a definition, rejecting empty names, nil handlers, and names
// already present.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("register: name must not be empty")
	}
	if def.Handler == nil {
		return fmt.Errorf("register %s: handler must not be nil", def.Name)
	}
	if _, exists := r.byName[def.Name]; exists {
		return fmt.Errorf("register: %w: %s", ErrDuplicateOperation, def.Name)
	}
	r.byName[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// List returns all definitions in registration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (Definition, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}
