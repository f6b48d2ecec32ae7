package commands

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

// MarkOrderUrgentCommandHandler handles flagging orders as urgent.
type MarkOrderUrgentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderUrgentCommandHandler creates a handler for urgent flag operations.
func NewMarkOrderUrgentCommandHandler(uowFactory OrderUoWFactory) MarkOrderUrgentCommandHandler {
	return MarkOrderUrgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the urgent flag command.
// Loads the order (ErrOrderNotFound) and sets the flag through the
// aggregate, which rejects terminal orders.
func (h MarkOrderUrgentCommandHandler) Handle(ctx context.Context, command MarkOrderUrgentCommand) error {
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

	if err = trackedOrder.MarkUrgent(); err != nil {
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
