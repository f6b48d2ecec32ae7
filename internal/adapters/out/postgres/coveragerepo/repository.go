package coveragerepo

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCoverageAreaRepository implements CoverageAreaRepository using GORM.
type GormCoverageAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCoverageAreaRepository creates a new GORM coverage area repository.
func NewGormCoverageAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormCoverageAreaRepository {
	return &GormCoverageAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coverage area to the database.
func (r *GormCoverageAreaRepository) Add(ctx context.Context, aggregate *coverage.CoverageArea) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a coverage area by ID.
func (r *GormCoverageAreaRepository) Get(ctx context.Context, id kernel.UUID) (*coverage.CoverageArea, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoverageAreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coverage area", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored coverage area ordered by id.
func (r *GormCoverageAreaRepository) GetAll(ctx context.Context) ([]*coverage.CoverageArea, error) {
	var dtos []CoverageAreaDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetByCompany retrieves the coverage areas linked to a company.
func (r *GormCoverageAreaRepository) GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*coverage.CoverageArea, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CoverageAreaDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN company_coverage_areas cca ON cca.coverage_area_id = coverage_areas.id").
		Where("cca.company_id = ?", companyID.Bytes()).
		Order("coverage_areas.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormCoverageAreaRepository) toDomainAll(dtos []CoverageAreaDTO) ([]*coverage.CoverageArea, error) {
	areas := make([]*coverage.CoverageArea, 0, len(dtos))
	for _, dto := range dtos {
		area, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	return areas, nil
}
