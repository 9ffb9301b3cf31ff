package dispatch

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// HandlerFunc executes one operation with already-validated arguments and
// returns its payload, or a domain/I/O error to be wrapped by the Dispatcher.
type HandlerFunc func(input json.RawMessage) (string, error)

// Definition is the static descriptor of one operation: its unique name, a
// human-readable description, the declared parameter schema used for both
// advertisement and validation, and the handler invoked after validation.
// Definitions are created at startup and never mutated afterwards.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     HandlerFunc
}

var reflector = jsonschema.Reflector{
	AllowAdditionalProperties: false,
	Anonymous:                 true,
	DoNotReference:            true,
}

// GenerateSchema derives the declared input schema from a Go struct type.
// Fields without omitempty are required; enum tags become allowed-value sets.
func GenerateSchema[T any]() *jsonschema.Schema {
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}
