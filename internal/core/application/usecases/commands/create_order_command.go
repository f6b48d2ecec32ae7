package commands

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalPriceIsInvalid = errors.New("total price must not be negative")
)

// CreateOrderCommand represents a request to place a new order for a client.
// The order starts in pending status and waits for dispatch to a dealer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, 15990)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both ids are constructed and the price is not negative.
func NewCreateOrderCommand(orderID kernel.UUID, clientID kernel.UUID, totalPrice float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the client placing the order.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// TotalPrice returns the order total.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return ErrTotalPriceIsInvalid
	}

	c.totalPrice = totalPrice
	return nil
}
