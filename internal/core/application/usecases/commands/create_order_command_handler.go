package commands

import (
	"context"
	"errors"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

// ErrClientNotFound is returned when the order references an unknown client.
var ErrClientNotFound = errors.New("client not found")

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the client exists and persists the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Rejects orders for unknown clients with ErrClientNotFound. The new order
// is stamped with the current time and persisted in pending status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ClientRepository().Get(ctx, command.ClientID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	newOrder, err := order.NewOrder(command.OrderID(), command.ClientID(), time.Now().UTC(), command.TotalPrice())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
