package commands

import (
	"errors"
	"slices"

	"dinebot/internal/core/domain/model/kernel"
	"dinebot/internal/pkg/guard"
)

var (
	ErrAddItemsCommandIsNotConstructed = errors.New(
		"AddItemsCommand must be created via NewAddItemsCommand constructor",
	)
)

// AddItemsCommand represents a request to add items to the session's
// in-progress cart. Items and quantities are the two parallel slot lists the
// NLU frontend extracted from the utterance; pairing them up — including the
// mismatched-length case — is the handler's responsibility, not the
// command's.
//
// Example:
//
//	cmd, err := NewAddItemsCommand(sessionKey, []string{"pizza"}, []float64{2})
//	if err != nil {
//	    return fmt.Errorf("invalid add request: %w", err)
//	}
//	text, err := handler.Handle(ctx, cmd)
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	sessionKey kernel.SessionKey
	items      []string
	quantities []float64

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to add items to a session's cart.
// Validates the session key; the slot lists are carried as-is.
func NewAddItemsCommand(
	sessionKey kernel.SessionKey, items []string, quantities []float64,
) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionKey(sessionKey); err != nil {
		return AddItemsCommand{}, err
	}

	cmd.items = slices.Clone(items)
	cmd.quantities = slices.Clone(quantities)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// SessionKey returns the session the items belong to.
func (c AddItemsCommand) SessionKey() kernel.SessionKey {
	return c.sessionKey
}

// Items returns the food-item names in utterance order.
func (c AddItemsCommand) Items() []string {
	return c.items
}

// Quantities returns the quantities paired positionally with Items.
func (c AddItemsCommand) Quantities() []float64 {
	return c.quantities
}

func (c *AddItemsCommand) setSessionKey(sessionKey kernel.SessionKey) error {
	if err := sessionKey.Validate(); err != nil {
		return err
	}

	c.sessionKey = sessionKey
	return nil
}
