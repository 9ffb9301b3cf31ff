package dispatch

// FailureKind classifies why an invocation did not produce a payload.
type FailureKind string

const (
	// KindUnknownOperation: no definition registered under the requested name.
	KindUnknownOperation FailureKind = "unknown_operation"
	// KindMissingParameter: a required parameter is absent from the arguments.
	KindMissingParameter FailureKind = "missing_parameter"
	// KindInvalidParameter: a parameter is present but has the wrong JSON type
	// or a value outside its declared enum.
	KindInvalidParameter FailureKind = "invalid_parameter"
	// KindHandlerError wraps any failure raised by the handler itself.
	KindHandlerError FailureKind = "handler_error"
)

// Result is the uniform outcome of one invocation: exactly one of success
// (OK with Payload) or failure (Kind with Message), never both.
type Result struct {
	OK      bool
	Payload string
	Kind    FailureKind
	Message string
}

func Success(payload string) Result {
	return Result{OK: true, Payload: payload}
}

func Failure(kind FailureKind, message string) Result {
	return Result{Kind: kind, Message: message}
}
