// Package commands contains the order operations that mutate system state:
// adding items to a cart, removing them, and completing an order. Every
// handler converts user-correctable problems into fulfillment text and
// returns an error only for conditions the transport must not surface
// verbatim (improperly constructed commands, unexpected infrastructure
// faults).
package commands

import (
	"context"

	"dinebot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for the completion
// handler without binding it to a concrete database adapter.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages the transaction around order persistence.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
