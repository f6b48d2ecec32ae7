package commands

import (
	"context"
	"errors"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles status transitions for orders.
// The read-modify-write runs inside one transaction so a concurrent change
// to the same order cannot interleave with this one.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the order (ErrOrderNotFound) and applies the transition through the
// aggregate, which enforces the transition table, actor authorization and
// delivery date stamping. Requesting the current status is a no-op.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	trackedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = trackedOrder.Transition(command.Target(), command.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
