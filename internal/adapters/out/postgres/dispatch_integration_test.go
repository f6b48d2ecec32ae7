package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/coveragerepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/dealerrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dispatchUoWFactory narrows the full unit of work factory to the interface
// the dispatch handler expects.
type dispatchUoWFactory struct {
	inner *postgres.GormUnitOfWorkFactory
}

func (f dispatchUoWFactory) Create() commands.DispatchUoW {
	return f.inner.Create()
}

// DispatchConcurrencyIntegrationTestSuite verifies that the one-active-order
// rule holds when two dispatches race for the same dealer. An idle dealer has
// no active order row, so the check alone cannot serialize the race; the
// dealer row lock taken by the handler has to.
type DispatchConcurrencyIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *DispatchConcurrencyIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&dealerrepo.DealerDTO{},
		&orderrepo.OrderDTO{},
		&coveragerepo.CoverageAreaDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *DispatchConcurrencyIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dealers, orders, coverage_areas CASCADE").Error)
}

func (suite *DispatchConcurrencyIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DispatchConcurrencyIntegrationTestSuite) seedDealer(ctx context.Context) kernel.UUID {
	dealerID := kernel.NewUUID()
	dealerAgg, err := dealer.NewDealer(dealerID, "Racing Dealer", kernel.NewPoint(-70.65, -33.45))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DealerRepository().Add(ctx, dealerAgg))
	suite.Require().NoError(uow.Commit(ctx))

	return dealerID
}

func (suite *DispatchConcurrencyIntegrationTestSuite) seedPendingOrder(ctx context.Context) kernel.UUID {
	orderID := kernel.NewUUID()
	orderAgg, err := order.NewOrder(orderID, kernel.NewUUID(), time.Now().UTC(), 4990)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, orderAgg))
	suite.Require().NoError(uow.Commit(ctx))

	return orderID
}

func (suite *DispatchConcurrencyIntegrationTestSuite) TestConcurrentDispatch_IdleDealer_OnlyOneWins() {
	ctx := context.Background()

	dealerID := suite.seedDealer(ctx)
	firstOrderID := suite.seedPendingOrder(ctx)
	secondOrderID := suite.seedPendingOrder(ctx)

	handler := commands.NewAssignOrderCommandHandler(dispatchUoWFactory{inner: suite.factory})

	firstCommand, err := commands.NewAssignOrderCommand(firstOrderID, dealerID)
	suite.Require().NoError(err)
	secondCommand, err := commands.NewAssignOrderCommand(secondOrderID, dealerID)
	suite.Require().NoError(err)

	results := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = handler.Handle(ctx, firstCommand)
	}()
	go func() {
		defer wg.Done()
		results[1] = handler.Handle(ctx, secondCommand)
	}()
	wg.Wait()

	succeeded := 0
	rejected := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.Require().ErrorIs(err, commands.ErrDealerHasActiveOrder)
			rejected++
		}
	}
	suite.Equal(1, succeeded, "exactly one dispatch should win the dealer")
	suite.Equal(1, rejected, "the other dispatch should see the dealer as busy")

	var active int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("dealer_id = ? AND status = ?", dealerID.Bytes(), int(order.InProgress)).
		Count(&active).Error)
	suite.Equal(int64(1), active)
}

func TestDispatchConcurrencyIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchConcurrencyIntegrationTestSuite))
}
