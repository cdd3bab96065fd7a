package kernel

import (
	"regexp"

	"dinebot/internal/pkg/errs"
)

// ErrSessionKeyIsNotConstructed indicates that a SessionKey was not created
// through NewSessionKey or SessionKeyFromContextName. The zero value is
// invalid by design: an absent session must never be coerced into a usable key.
var ErrSessionKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"session key must be created via NewSessionKey or SessionKeyFromContextName",
)

// contextNamePattern matches the session token embedded in a conversation
// context resource name, e.g.
// "projects/food-bot/agent/sessions/abc123/contexts/ongoing-order".
var contextNamePattern = regexp.MustCompile(`/sessions/(.*?)/contexts/`)

// SessionKey is a value object identifying one conversation session. It is
// the sole identity for an in-progress cart and is opaque to every layer of
// the system: nothing inspects its contents beyond equality.
//
// SessionKey is immutable and comparable, making it usable as a map key.
//
// Example:
//
//	key, err := kernel.SessionKeyFromContextName(ctx.Name)
//	if err != nil {
//	    // treat the session as absent
//	}
type SessionKey struct {
	value string
}

// NewSessionKey creates a SessionKey from a raw session token.
// Returns an error for an empty token.
func NewSessionKey(value string) (SessionKey, error) {
	if value == "" {
		return SessionKey{}, errs.NewValueIsRequiredError("session key")
	}
	return SessionKey{value: value}, nil
}

// SessionKeyFromContextName extracts the session token from a conversation
// context resource name. Returns an error when the name does not carry the
// sessions/contexts path segment.
func SessionKeyFromContextName(name string) (SessionKey, error) {
	match := contextNamePattern.FindStringSubmatch(name)
	if match == nil {
		return SessionKey{}, errs.NewValueIsInvalidError("context name")
	}
	return NewSessionKey(match[1])
}

// String returns the raw session token.
func (k SessionKey) String() string {
	return k.value
}

// IsEqual compares two session keys by value.
func (k SessionKey) IsEqual(other SessionKey) bool {
	return k.value == other.value
}

// Validate ensures the key was created via a constructor.
func (k SessionKey) Validate() error {
	if k.value == "" {
		return ErrSessionKeyIsNotConstructed
	}
	return nil
}
