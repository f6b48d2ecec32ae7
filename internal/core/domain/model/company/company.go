// Package company provides the Company aggregate: a seller with a physical
// location, associated coverage areas and payment methods, and derived
// performance counters. The counters are recomputed by a batch job, never
// incrementally maintained.
package company

import (
	"errors"
	"fmt"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a company without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCompanyIsNotConstructed is returned when using an improperly initialized Company.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
)

// Stats holds the derived performance counters for a company. They are
// overwritten wholesale by the recomputation job.
type Stats struct {
	Deliveries       int
	FailedDeliveries int
	TotalSales       float64
}

// Company represents a seller in the marketplace.
type Company struct {
	id               kernel.UUID
	name             string
	location         kernel.Point
	coverageAreaIDs  []kernel.UUID
	paymentMethodIDs []kernel.UUID
	stats            Stats
	guard            guard.ConstructorGuard
}

// NewCompany creates a new Company. The coverage-area and payment-method id
// lists may be empty; every listed id must be valid.
func NewCompany(
	id kernel.UUID,
	name string,
	location kernel.Point,
	coverageAreaIDs []kernel.UUID,
	paymentMethodIDs []kernel.UUID,
) (*Company, error) {
	company := &Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		company.setID(id),
		company.setName(name),
		company.setLocation(location),
		company.setCoverageAreaIDs(coverageAreaIDs),
		company.setPaymentMethodIDs(paymentMethodIDs),
	); err != nil {
		return nil, err
	}

	return company, nil
}

// RestoreCompany reconstructs a Company aggregate from persistent storage,
// including its derived counters.
func RestoreCompany(
	id kernel.UUID,
	name string,
	location kernel.Point,
	coverageAreaIDs []kernel.UUID,
	paymentMethodIDs []kernel.UUID,
	stats Stats,
) (*Company, error) {
	company, err := NewCompany(id, name, location, coverageAreaIDs, paymentMethodIDs)
	if err != nil {
		return nil, err
	}

	company.stats = stats
	return company, nil
}

// Validate checks if the Company was properly constructed using a constructor.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// ID returns the company's unique identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the company's human-readable name.
func (c *Company) Name() string {
	return c.name
}

// Location returns the company's position.
func (c *Company) Location() kernel.Point {
	return c.location
}

// CoverageAreaIDs returns the ids of the coverage areas the company delivers to.
func (c *Company) CoverageAreaIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.coverageAreaIDs))
	copy(out, c.coverageAreaIDs)
	return out
}

// PaymentMethodIDs returns the ids of the payment methods the company accepts.
func (c *Company) PaymentMethodIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.paymentMethodIDs))
	copy(out, c.paymentMethodIDs)
	return out
}

// Stats returns the derived performance counters.
func (c *Company) Stats() Stats {
	return c.stats
}

// ReplaceStats overwrites the derived counters with freshly recomputed
// values. Only the batch recomputation job calls this.
func (c *Company) ReplaceStats(stats Stats) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.stats = stats
	return nil
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Company) setLocation(location kernel.Point) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Company) setCoverageAreaIDs(ids []kernel.UUID) error {
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("coverage area id %d", i), err)
		}
	}
	c.coverageAreaIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *Company) setPaymentMethodIDs(ids []kernel.UUID) error {
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("payment method id %d", i), err)
		}
	}
	c.paymentMethodIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
