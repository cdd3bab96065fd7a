package commands

import (
	"errors"
	"slices"

	"dinebot/internal/core/domain/model/kernel"
	"dinebot/internal/pkg/guard"
)

var (
	ErrRemoveItemsCommandIsNotConstructed = errors.New(
		"RemoveItemsCommand must be created via NewRemoveItemsCommand constructor",
	)
)

// RemoveItemsCommand represents a request to remove items from the session's
// in-progress cart.
type RemoveItemsCommand struct { //nolint:recvcheck //using for validation
	sessionKey kernel.SessionKey
	items      []string

	guard guard.ConstructorGuard
}

// NewRemoveItemsCommand creates a command to remove items from a session's
// cart. Validates the session key; an empty item list is allowed.
func NewRemoveItemsCommand(sessionKey kernel.SessionKey, items []string) (RemoveItemsCommand, error) {
	cmd := RemoveItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionKey(sessionKey); err != nil {
		return RemoveItemsCommand{}, err
	}

	cmd.items = slices.Clone(items)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemsCommandIsNotConstructed)
}

// SessionKey returns the session the removal targets.
func (c RemoveItemsCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}

// Items returns the food-item names to remove, in utterance order.
func (c RemoveItemsCommand) Items() []string {
	return c.items
}

func (c *RemoveItemsCommand) setSessionKey(sessionKey kernel.SessionKey) error {
	if err := sessionKey.Validate(); err != nil {
		return err
	}

	c.sessionKey = sessionKey
	return nil
}
