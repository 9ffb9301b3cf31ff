package dispatch

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
)

// validateArgs checks raw arguments against a declared schema: every required
// parameter must be present (JSON null counts as absent), and every declared
// parameter that is present must match its type and enum constraints.
// Undeclared extra arguments are ignored; the schema advertises
// additionalProperties=false, so a well-behaved caller never sends them.
func validateArgs(schema *jsonschema.Schema, args json.RawMessage) (Result, bool) {
	if schema == nil {
		return Result{}, true
	}

	for _, name := range schema.Required {
		v := gjson.GetBytes(args, name)
		if !v.Exists() || v.Type == gjson.Null {
			return Failure(KindMissingParameter, fmt.Sprintf("missing required parameter %q", name)), false
		}
	}

	if schema.Properties == nil {
		return Result{}, true
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key, pair.Value
		v := gjson.GetBytes(args, name)
		if !v.Exists() || v.Type == gjson.Null {
			continue // absence of optional parameters was handled above
		}
		if !matchesType(v, prop.Type) {
			return Failure(KindInvalidParameter,
				fmt.Sprintf("parameter %q must be of type %s", name, prop.Type)), false
		}
		if len(prop.Enum) > 0 && !inEnum(v, prop.Enum) {
			return Failure(KindInvalidParameter,
				fmt.Sprintf("parameter %q must be one of %s", name, enumList(prop.Enum))), false
		}
	}
	return Result{}, true
}

func matchesType(v gjson.Result, typ string) bool {
	switch typ {
	case "string":
		return v.Type == gjson.String
	case "boolean":
		return v.Type == gjson.True || v.Type == gjson.False
	case "integer":
		return v.Type == gjson.Number && v.Num == math.Trunc(v.Num)
	case "number":
		return v.Type == gjson.Number
	case "array":
		return v.IsArray()
	case "object":
		return v.IsObject()
	default:
		// Unconstrained declared type accepts any JSON value.
		return true
	}
}

func inEnum(v gjson.Result, enum []any) bool {
	for _, allowed := range enum {
		if v.Value() == allowed {
			return true
		}
	}
	return false
}

func enumList(enum []any) string {
	b, err := json.Marshal(enum)
	if err != nil {
		return fmt.Sprint(enum)
	}
	return string(b)
}
