package commands

import (
	"context"
	"fmt"

	"dinebot/internal/core/domain/model/cart"
	"dinebot/internal/core/ports"
)

// AddItemsCommandHandler merges requested items into the session's cart,
// creating the cart on first use. Duplicate item names within one request
// and across requests follow last-write-wins semantics: the new quantity
// replaces the old one, it is not added to it.
type AddItemsCommandHandler struct {
	carts ports.CartStore
}

// NewAddItemsCommandHandler creates a handler for add-to-order operations.
func NewAddItemsCommandHandler(carts ports.CartStore) AddItemsCommandHandler {
	return AddItemsCommandHandler{carts: carts}
}

// Handle processes the add request and returns the fulfillment text.
// Mismatched item/quantity lists produce a clarification request without
// touching the cart store.
func (h *AddItemsCommandHandler) Handle(_ context.Context, cmd AddItemsCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	items, quantities := cmd.Items(), cmd.Quantities()
	if len(items) != len(quantities) {
		return MsgItemsQuantitiesMismatch, nil
	}

	release := h.carts.Lock(cmd.SessionKey())
	defer release()

	current, ok := h.carts.Get(cmd.SessionKey())
	if !ok {
		current = cart.NewCart()
	}

	for i, item := range items {
		current.Set(item, quantities[i])
	}
	h.carts.Put(cmd.SessionKey(), current)

	return fmt.Sprintf("Added items: %s. Anything else?", current.Summary()), nil
}
