package dealerrepo

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDealerRepository implements DealerRepository using GORM.
type GormDealerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDealerRepository creates a new GORM dealer repository.
func NewGormDealerRepository(db *gorm.DB, tracker aggregateTracker) *GormDealerRepository {
	return &GormDealerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dealer to the database.
func (r *GormDealerRepository) Add(ctx context.Context, aggregate *dealer.Dealer) error {
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

// Update saves an existing dealer to the database.
func (r *GormDealerRepository) Update(ctx context.Context, aggregate *dealer.Dealer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&DealerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dealer by ID.
func (r *GormDealerRepository) Get(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a dealer by ID and locks its row FOR UPDATE.
// Inside a transaction a second reader blocks here until the first commits,
// so concurrent dispatches to the same dealer serialize even when the
// dealer has no active order row to lock.
func (r *GormDealerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error) {
	return r.get(ctx, id, true)
}

func (r *GormDealerRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*dealer.Dealer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DealerDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dealer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered dealer ordered by id.
func (r *GormDealerRepository) GetAll(ctx context.Context) ([]*dealer.Dealer, error) {
	var dtos []DealerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dealers := make([]*dealer.Dealer, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}

	return dealers, nil
}
