package ports

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/company"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for company aggregates.
type CompanyRepository interface {
	// Add persists a new company aggregate to storage.
	Add(ctx context.Context, aggregate *company.Company) error

	// Update persists changes to an existing company aggregate, including
	// its derived performance counters.
	Update(ctx context.Context, aggregate *company.Company) error

	// Get retrieves a company aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such company exists.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)

	// GetAll retrieves every registered company.
	GetAll(ctx context.Context) ([]*company.Company, error)
}
