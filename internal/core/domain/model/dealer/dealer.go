// Package dealer provides the Dealer aggregate: a delivery agent with a
// known position. The central rule that a dealer carries at most one active
// order at a time is enforced by the dispatch transaction, not by this
// aggregate; the dealer itself only owns its identity and location.
package dealer

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a dealer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDealerIsNotConstructed is returned when using an improperly initialized Dealer.
	ErrDealerIsNotConstructed = errors.New("Dealer must be created via NewDealer constructor")
)

// Dealer represents a delivery dealer in the marketplace.
//
// frequentRoute is a derived field: the route the dealer has driven most
// often, recomputed by a batch job from completed orders. It carries no
// business rules and may lag behind live traffic.
type Dealer struct {
	id            kernel.UUID
	name          string
	location      kernel.Point
	frequentRoute *kernel.LineString
	guard         guard.ConstructorGuard
}

// NewDealer creates a new Dealer with the given identity, name and current
// position. All parameters are validated.
func NewDealer(id kernel.UUID, name string, location kernel.Point) (*Dealer, error) {
	dealer := &Dealer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dealer.setID(id),
		dealer.setName(name),
		dealer.setLocation(location),
	); err != nil {
		return nil, err
	}

	return dealer, nil
}

// RestoreDealer reconstructs a Dealer aggregate from persistent storage.
func RestoreDealer(id kernel.UUID, name string, location kernel.Point, frequentRoute *kernel.LineString) (*Dealer, error) {
	restored, err := NewDealer(id, name, location)
	if err != nil {
		return nil, err
	}

	if frequentRoute != nil {
		if err = restored.ReplaceFrequentRoute(*frequentRoute); err != nil {
			return nil, err
		}
	}
	return restored, nil
}

// Validate checks if the Dealer was properly constructed using a constructor.
func (d *Dealer) Validate() error {
	if d == nil {
		return ErrDealerIsNotConstructed
	}
	return d.guard.Validate(ErrDealerIsNotConstructed)
}

// ID returns the dealer's unique identifier.
func (d *Dealer) ID() kernel.UUID {
	return d.id
}

// Name returns the dealer's human-readable name.
func (d *Dealer) Name() string {
	return d.name
}

// Location returns the dealer's current position.
func (d *Dealer) Location() kernel.Point {
	return d.location
}

// FrequentRoute returns the dealer's most-driven route, or nil when it has
// not been computed yet.
func (d *Dealer) FrequentRoute() *kernel.LineString {
	return d.frequentRoute
}

// ReplaceFrequentRoute overwrites the derived most-driven route.
func (d *Dealer) ReplaceFrequentRoute(route kernel.LineString) error {
	if err := errors.Join(d.Validate(), route.Validate()); err != nil {
		return err
	}

	d.frequentRoute = &route
	return nil
}

// MoveTo updates the dealer's current position.
func (d *Dealer) MoveTo(location kernel.Point) error {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return err
	}

	d.location = location
	return nil
}

func (d *Dealer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dealer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Dealer) setLocation(location kernel.Point) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
