package commands

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrDealerNotFound       = errors.New("dealer not found")
	ErrOrderNotPending      = errors.New("order is not pending")
	ErrDealerHasActiveOrder = errors.New("dealer already has an active order")
	ErrClientNotCovered     = errors.New("client location is outside coverage")
)

// AssignOrderCommandHandler orchestrates the dispatch of a pending order to
// a dealer. The whole workflow runs under one transaction that locks the
// dealer's row before the availability check. The lock is what closes the
// idle-dealer race: with no active order there is no order row to lock, so
// two concurrent dispatches would otherwise both observe a free dealer and
// both assign. Serialized on the dealer row, the loser re-reads after the
// winner commits and sees the new active order.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(orderID, dealerID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    log.Println("Unknown order")
//	case errors.Is(err, ErrDealerHasActiveOrder):
//	    log.Println("Dealer is busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order dispatch operations.
// Requires a DispatchUoWFactory for coordinating transactional reads and writes.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Loads the order (ErrOrderNotFound), rejects non-pending orders
// (ErrOrderNotPending), verifies the dealer exists (ErrDealerNotFound),
// checks the client is inside some coverage area when areas are configured
// (ErrClientNotCovered), and enforces one active order per dealer
// (ErrDealerHasActiveOrder) before assigning and persisting.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
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

	pendingOrder, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if pendingOrder.Status() != order.Pending {
		return ErrOrderNotPending
	}

	// Locks the dealer row until commit; concurrent dispatches to the same
	// dealer queue up here before the active-order check.
	if _, err = uow.DealerRepository().GetForUpdate(ctx, command.DealerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrDealerNotFound
		}
		return err
	}

	if err = h.checkCoverage(ctx, uow, pendingOrder); err != nil {
		return err
	}

	active, err := orderRepo.GetActiveByDealer(ctx, command.DealerID())
	if err != nil {
		return err
	}
	if active != nil {
		return ErrDealerHasActiveOrder
	}

	if err = pendingOrder.Assign(command.DealerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// checkCoverage rejects dispatch when coverage areas are configured and
// none of them contains the ordering client's location. With zero
// configured areas coverage is not enforced.
func (h AssignOrderCommandHandler) checkCoverage(ctx context.Context, uow DispatchUoW, pendingOrder *order.Order) error {
	areas, err := uow.CoverageAreaRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(areas) == 0 {
		return nil
	}

	orderClient, err := uow.ClientRepository().Get(ctx, pendingOrder.ClientID())
	if err != nil {
		return err
	}

	covered, err := services.NewCoverageMatcher().IsClientCovered(orderClient.Location(), areas)
	if err != nil {
		return err
	}
	if !covered {
		return ErrClientNotCovered
	}

	return nil
}
