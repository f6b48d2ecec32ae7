// Package coverage provides the CoverageArea aggregate: a named polygon a
// company promises to deliver within. Coverage areas are administrative
// input and are read-only to the dispatch subsystem.
package coverage

import (
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a coverage area without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCoverageAreaIsNotConstructed is returned when using an improperly initialized CoverageArea.
	ErrCoverageAreaIsNotConstructed = errors.New("CoverageArea must be created via NewCoverageArea constructor")
)

// CoverageArea represents a delivery coverage zone owned by one or more
// companies (the company-to-area mapping lives on the Company aggregate).
type CoverageArea struct {
	id      kernel.UUID
	name    string
	polygon kernel.Polygon
	guard   guard.ConstructorGuard
}

// NewCoverageArea creates a new CoverageArea from a validated polygon ring.
func NewCoverageArea(id kernel.UUID, name string, polygon kernel.Polygon) (*CoverageArea, error) {
	area := &CoverageArea{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		area.setID(id),
		area.setName(name),
		area.setPolygon(polygon),
	); err != nil {
		return nil, err
	}

	return area, nil
}

// RestoreCoverageArea reconstructs a CoverageArea aggregate from persistent storage.
func RestoreCoverageArea(id kernel.UUID, name string, polygon kernel.Polygon) (*CoverageArea, error) {
	return NewCoverageArea(id, name, polygon)
}

// Validate checks if the CoverageArea was properly constructed using a constructor.
func (a *CoverageArea) Validate() error {
	if a == nil {
		return ErrCoverageAreaIsNotConstructed
	}
	return a.guard.Validate(ErrCoverageAreaIsNotConstructed)
}

// ID returns the coverage area's unique identifier.
func (a *CoverageArea) ID() kernel.UUID {
	return a.id
}

// Name returns the coverage area's human-readable name.
func (a *CoverageArea) Name() string {
	return a.name
}

// Polygon returns the coverage ring.
func (a *CoverageArea) Polygon() kernel.Polygon {
	return a.polygon
}

func (a *CoverageArea) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *CoverageArea) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *CoverageArea) setPolygon(polygon kernel.Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	a.polygon = polygon
	return nil
}
