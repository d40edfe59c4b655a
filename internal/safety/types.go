package safety

// Config toggles the individual filter stages.
type Config struct {
	FilterEnabled             bool
	JailbreakDetectionEnabled bool
	DomainValidationEnabled   bool
}

// Result is the outcome of classifying one input: either allowed with the
// sanitized text, or rejected with a user-facing reason. Never both.
type Result struct {
	Allowed   bool
	Sanitized string
	Reason    string
}

// AllowedResult builds an allowed result carrying the sanitized input.
func AllowedResult(sanitized string) Result {
	return Result{Allowed: true, Sanitized: sanitized}
}

// RejectedResult builds a rejected result carrying the reason.
func RejectedResult(reason string) Result {
	return Result{Allowed: false, Reason: reason}
}
