package commands

import (
	"errors"

	"dinebot/internal/core/domain/model/kernel"
	"dinebot/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a request to finalize the session's
// in-progress cart into a durable order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionKey kernel.SessionKey

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete a session's order.
func NewCompleteOrderCommand(sessionKey kernel.SessionKey) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionKey(sessionKey); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionKey returns the session whose order is being completed.
func (c CompleteOrderCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}

func (c *CompleteOrderCommand) setSessionKey(sessionKey kernel.SessionKey) error {
	if err := sessionKey.Validate(); err != nil {
		return err
	}

	c.sessionKey = sessionKey
	return nil
}
