package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var ErrMarkOrderUrgentCommandIsNotConstructed = errors.New(
	"MarkOrderUrgentCommand must be created via NewMarkOrderUrgentCommand constructor",
)

// MarkOrderUrgentCommand represents a request to flag an order as urgent.
// Only pending and in-progress orders accept the flag.
type MarkOrderUrgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderUrgentCommand creates a command to flag an order as urgent.
func NewMarkOrderUrgentCommand(orderID kernel.UUID) (MarkOrderUrgentCommand, error) {
	urgentCommand := MarkOrderUrgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := urgentCommand.setOrderID(orderID); err != nil {
		return MarkOrderUrgentCommand{}, err
	}

	return urgentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderUrgentCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderUrgentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to flag.
func (c MarkOrderUrgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderUrgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
