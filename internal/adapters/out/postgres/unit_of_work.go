// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Dispatch relies on the transaction scope: the dealer row is locked
// FOR UPDATE before the active-order check, so concurrent dispatches to
// the same dealer serialize at the database.
package postgres

import (
	"context"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/clientrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/companyrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/coveragerepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/dealerrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Repositories obtained from an active unit of work
// share its transaction; without an active transaction they run against the
// main connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DealerRepository provides access to dealer persistence within the unit of work.
func (uow *GormUnitOfWork) DealerRepository() ports.DealerRepository {
	return dealerrepo.NewGormDealerRepository(uow.conn(), uow)
}

// ClientRepository provides access to client persistence within the unit of work.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// CompanyRepository provides access to company persistence within the unit of work.
func (uow *GormUnitOfWork) CompanyRepository() ports.CompanyRepository {
	return companyrepo.NewGormCompanyRepository(uow.conn(), uow)
}

// CoverageAreaRepository provides access to coverage area persistence within the unit of work.
func (uow *GormUnitOfWork) CoverageAreaRepository() ports.CoverageAreaRepository {
	return coveragerepo.NewGormCoverageAreaRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
