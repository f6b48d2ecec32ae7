package companyrepo

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/company"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new company to the database together with its link rows.
func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing company to the database.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a company by ID, including its coverage and payment links.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	err := r.db.WithContext(ctx).
		Preload("CoverageAreas").
		Preload("PaymentMethods").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered company ordered by id.
func (r *GormCompanyRepository) GetAll(ctx context.Context) ([]*company.Company, error) {
	var dtos []CompanyDTO
	err := r.db.WithContext(ctx).
		Preload("CoverageAreas").
		Preload("PaymentMethods").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	companies := make([]*company.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, nil
}
