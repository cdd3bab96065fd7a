package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"dinebot/internal/core/domain/model/cart"
	"dinebot/internal/core/ports"
)

// CompleteOrderCommandHandler converts the session's staged cart into
// durable order records. The persistence sequence — id allocation, one
// line-item insert per cart entry, tracking write — runs in a single unit of
// work; any failure rolls it back.
//
// Completion is a single attempt: the cart is removed from the store whether
// persistence succeeds or fails, and every failure surfaces as fulfillment
// text rather than an error.
type CompleteOrderCommandHandler struct {
	carts      ports.CartStore
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	carts ports.CartStore,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		carts:      carts,
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_order_handler"),
	}
}

// Handle processes the completion request and returns the fulfillment text.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	release := h.carts.Lock(cmd.SessionKey())
	defer release()

	current, ok := h.carts.Get(cmd.SessionKey())
	if !ok {
		return MsgOrderNotFound, nil
	}

	// The staging cart is discarded on success and failure alike.
	defer h.carts.Delete(cmd.SessionKey())

	orderID, err := h.saveOrder(ctx, current)
	if err != nil {
		completionsTotal.WithLabelValues("failure").Inc()
		h.logger.ErrorContext(ctx, "Order persistence failed",
			"session", cmd.SessionKey().String(), "error", err)
		return MsgOrderProcessingFailed, nil
	}

	repo := h.uowFactory.Create().OrderRepository()
	total, err := repo.TotalPrice(ctx, orderID)
	if err != nil {
		completionsTotal.WithLabelValues("failure").Inc()
		h.logger.ErrorContext(ctx, "Reading order total failed", "order_id", orderID, "error", err)
		return MsgOrderProcessingFailed, nil
	}

	status, err := repo.Status(ctx, orderID)
	if err != nil {
		completionsTotal.WithLabelValues("failure").Inc()
		h.logger.ErrorContext(ctx, "Reading order status failed", "order_id", orderID, "error", err)
		return MsgOrderProcessingFailed, nil
	}

	completionsTotal.WithLabelValues("success").Inc()
	return fmt.Sprintf(
		"Your order has been placed. Order ID: %d. Total amount: %s. Order Status: %s",
		orderID, strconv.FormatFloat(total, 'f', -1, 64), status,
	), nil
}

// saveOrder persists the cart as one order inside a transaction and returns
// the allocated order id.
func (h *CompleteOrderCommandHandler) saveOrder(ctx context.Context, current *cart.Cart) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orderID, err := repo.NextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	for _, line := range current.Lines() {
		if err = repo.AddItem(ctx, orderID, line.Item, line.Quantity); err != nil {
			return 0, err
		}
	}

	if err = repo.AddTracking(ctx, orderID, ports.OrderStatusInProgress); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
