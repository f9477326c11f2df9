package order

// Severity classifies the outcome of a transition validation.
// Error results block the transition. Warning results allow it only after
// the caller explicitly acknowledges the message. Info results allow it and
// carry an advisory note. The zero value means a silent, unconditional pass.
type Severity string

const (
	// SeverityInfo marks a permitted transition with an advisory note.
	SeverityInfo Severity = "info"

	// SeverityWarning marks a permitted transition that requires explicit
	// acknowledgment before it is applied.
	SeverityWarning Severity = "warning"

	// SeverityError marks a forbidden transition.
	SeverityError Severity = "error"
)

// TransitionResult is the transient outcome of validating a status change.
// It is consumed by the application layer to decide whether to proceed
// silently, demand confirmation, or reject the request. It is never
// persisted.
type TransitionResult struct {
	IsValid  bool
	Severity Severity
	Message  string
}

// RequiresConfirmation reports whether the transition may only proceed
// after the caller acknowledged the warning message.
func (r TransitionResult) RequiresConfirmation() bool {
	return r.IsValid && r.Severity == SeverityWarning
}

func allowed() TransitionResult {
	return TransitionResult{IsValid: true}
}

func allowedWithNote(severity Severity, message string) TransitionResult {
	return TransitionResult{IsValid: true, Severity: severity, Message: message}
}

func rejected(message string) TransitionResult {
	return TransitionResult{IsValid: false, Severity: SeverityError, Message: message}
}
