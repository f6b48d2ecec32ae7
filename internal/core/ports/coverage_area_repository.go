package ports

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// CoverageAreaRepository defines the persistence contract for coverage areas.
type CoverageAreaRepository interface {
	// Add persists a new coverage area to storage.
	Add(ctx context.Context, aggregate *coverage.CoverageArea) error

	// Get retrieves a coverage area by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such area exists.
	Get(ctx context.Context, id kernel.UUID) (*coverage.CoverageArea, error)

	// GetAll retrieves every stored coverage area.
	GetAll(ctx context.Context) ([]*coverage.CoverageArea, error)

	// GetByCompany retrieves the coverage areas associated with a company.
	GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*coverage.CoverageArea, error)
}
