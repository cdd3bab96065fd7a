package commands

import (
	"context"
	"fmt"
	"strings"

	"dinebot/internal/core/ports"
)

// RemoveItemsCommandHandler removes items from the session's cart and
// reports what was removed and what was never there. The cart itself stays
// in the store even when it ends up empty; only completion discards it.
type RemoveItemsCommandHandler struct {
	carts ports.CartStore
}

// NewRemoveItemsCommandHandler creates a handler for remove-from-order
// operations.
func NewRemoveItemsCommandHandler(carts ports.CartStore) RemoveItemsCommandHandler {
	return RemoveItemsCommandHandler{carts: carts}
}

// Handle processes the removal request and returns the fulfillment text.
func (h *RemoveItemsCommandHandler) Handle(_ context.Context, cmd RemoveItemsCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	release := h.carts.Lock(cmd.SessionKey())
	defer release()

	current, ok := h.carts.Get(cmd.SessionKey())
	if !ok {
		return MsgOrderNotFound, nil
	}

	removed, missing := current.Remove(cmd.Items())

	var text string
	if len(removed) > 0 {
		text = fmt.Sprintf("Removed items: %s from your order.", strings.Join(removed, ", "))
	}
	// When both lists are non-empty the missing-items clause replaces the
	// removed-items clause. Upstream dialogue flows were built against this
	// wording, so it is kept verbatim.
	if len(missing) > 0 {
		text = fmt.Sprintf("Your current order does not have: %s", strings.Join(missing, ", "))
	}

	if current.IsEmpty() {
		text += " Your order is empty!"
	} else {
		text += fmt.Sprintf(" Remaining items: %s", current.Summary())
	}

	h.carts.Put(cmd.SessionKey(), current)
	return text, nil
}
