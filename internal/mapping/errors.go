package mapping

import "fmt"

// ConflictError reports a discovery fact that contradicts one already
// recorded: a second, different original name for the same composite
// type, or a second, different target for the same alias name. It is
// always surfaced to the caller; the store never picks a winner, since
// guessing would generate rename rules that compile but break the C
// boundary at runtime.
type ConflictError struct {
	// Name is the internal name or alias name the facts disagree about.
	Name string
	// Existing is the value already recorded.
	Existing string
	// Incoming is the contradicting value.
	Incoming string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting facts for %q: already recorded %q, got %q", e.Name, e.Existing, e.Incoming)
}
