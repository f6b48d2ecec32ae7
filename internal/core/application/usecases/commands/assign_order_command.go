package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to dispatch a pending order to a
// specific dealer.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	dealerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to dispatch an order to a dealer.
func NewAssignOrderCommand(orderID kernel.UUID, dealerID kernel.UUID) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setDealerID(dealerID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dispatch.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DealerID returns the identifier of the receiving dealer.
func (c AssignOrderCommand) DealerID() kernel.UUID {
	return c.dealerID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDealerID(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}

	c.dealerID = dealerID
	return nil
}
