// Package dispatch holds the operation registry and the dispatcher that
// routes invocations to handlers.
//
// Includes:
//   - Definition: name, description, declared input schema, handler.
//   - Registry: fixed set of definitions, unique names, registration order.
//   - Dispatcher: lookup + data-driven argument validation + execution,
//     normalising every outcome into exactly one Success or Failure Result.
//   - GenerateSchema[T](): derive the declared parameter schema from Go structs.
package dispatch
