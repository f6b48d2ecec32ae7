// Package client provides the Client aggregate: a customer with a delivery
// address and a fixed position. Location changes go through the CRUD surface,
// so the dispatch subsystem treats the position as immutable.
package client

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a client without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client represents a customer in the marketplace.
type Client struct {
	id       kernel.UUID
	name     string
	address  string
	location kernel.Point
	guard    guard.ConstructorGuard
}

// NewClient creates a new Client with the given identity, name, street
// address and position. The address may be empty; the position may not.
func NewClient(id kernel.UUID, name string, address string, location kernel.Point) (*Client, error) {
	client := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
		client.setLocation(location),
	); err != nil {
		return nil, err
	}

	client.address = address
	return client, nil
}

// RestoreClient reconstructs a Client aggregate from persistent storage.
func RestoreClient(id kernel.UUID, name string, address string, location kernel.Point) (*Client, error) {
	return NewClient(id, name, address, location)
}

// Validate checks if the Client was properly constructed using a constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's human-readable name.
func (c *Client) Name() string {
	return c.name
}

// Address returns the client's street address.
func (c *Client) Address() string {
	return c.address
}

// Location returns the client's position.
func (c *Client) Location() kernel.Point {
	return c.location
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setLocation(location kernel.Point) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
