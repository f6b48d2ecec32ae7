package orderrepo

import (
	"context"
	"errors"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. All columns are written,
// including ones going back to their zero value (cleared urgent flag,
// removed delivery date).
//
// The write is guarded on the status the aggregate was loaded with, so two
// racing transitions for the same order cannot both win: the loser gets
// ports.ErrStaleOrder and must reload.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ports.ErrStaleOrder
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDealer retrieves the dealer's in-progress order, if any.
// Inside a transaction the matched row is locked FOR UPDATE until commit.
// The lock only exists when a row matches; dispatch serializes idle
// dealers on the dealer row itself before calling this.
func (r *GormOrderRepository) GetActiveByDealer(ctx context.Context, dealerID kernel.UUID) (*order.Order, error) {
	if err := dealerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "dealer_id = ? AND status = ?", dealerID.Bytes(), order.InProgress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all orders awaiting dispatch.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	return r.getAllInStatus(ctx, order.Pending)
}

// GetAllInProgress retrieves all orders currently being delivered.
func (r *GormOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	return r.getAllInStatus(ctx, order.InProgress)
}

// GetAllCompleted retrieves all orders in a terminal status.
func (r *GormOrderRepository) GetAllCompleted(ctx context.Context) ([]*order.Order, error) {
	return r.getAllInStatus(ctx, order.Delivered, order.Failed)
}

func (r *GormOrderRepository) getAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status IN ?", statuses).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
