package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/company"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetAll(ctx context.Context) ([]*company.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*company.Company), args.Error(1)
}

type MockStatsUoW struct{ mock.Mock }

func (m *MockStatsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockStatsUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockStatsUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockStatsUoW) CoverageAreaRepository() ports.CoverageAreaRepository {
	args := m.Called()
	return args.Get(0).(ports.CoverageAreaRepository)
}

type MockStatsUoWFactory struct{ mock.Mock }

func (m *MockStatsUoWFactory) Create() commands.StatsUoW {
	args := m.Called()
	return args.Get(0).(commands.StatsUoW)
}

func testCompany(t *testing.T, areaIDs ...kernel.UUID) *company.Company {
	t.Helper()

	c, err := company.NewCompany(kernel.NewUUID(), "Sushi Vitacura", kernel.NewPoint(-70.62, -33.42), areaIDs, nil)
	require.NoError(t, err)
	return c
}

func deliveredTestOrder(t *testing.T, clientID kernel.UUID, price float64) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), clientID, time.Now().UTC(), price)
	require.NoError(t, err)

	dealerID := kernel.NewUUID()
	require.NoError(t, o.Assign(dealerID))
	require.NoError(t, o.Transition(order.Delivered, order.NewDealerActor(dealerID), time.Now().UTC()))
	return o
}

func failedTestOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), clientID, time.Now().UTC(), 4990)
	require.NoError(t, err)
	require.NoError(t, o.Transition(order.Failed, order.NewAdminActor(), time.Now().UTC()))
	return o
}

func statsFixture(orderRepo *MockOrderRepository, clientRepo *MockClientRepository,
	companyRepo *MockCompanyRepository, coverageRepo *MockCoverageAreaRepository,
) (*MockStatsUoW, *MockStatsUoWFactory) {
	uow := new(MockStatsUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("CompanyRepository").Return(companyRepo)
	uow.On("CoverageAreaRepository").Return(coverageRepo)

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func TestRecomputeCompanyStatsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should attribute covered completed orders to the company", func(t *testing.T) {
		area := coverageSquare(t)
		statsCompany := testCompany(t, area.ID())

		coveredClient := testClient(t, -70.62, -33.42)
		remoteClient := testClient(t, -71.50, -33.00)

		deliveredCovered := deliveredTestOrder(t, coveredClient.ID(), 12500)
		failedCovered := failedTestOrder(t, coveredClient.ID())
		deliveredRemote := deliveredTestOrder(t, remoteClient.ID(), 9990)

		orderRepo := new(MockOrderRepository)
		clientRepo := new(MockClientRepository)
		companyRepo := new(MockCompanyRepository)
		coverageRepo := new(MockCoverageAreaRepository)

		companyRepo.On("GetAll", ctx).Return([]*company.Company{statsCompany}, nil).Once()
		orderRepo.On("GetAllCompleted", ctx).
			Return([]*order.Order{deliveredCovered, failedCovered, deliveredRemote}, nil).Once()
		clientRepo.On("GetAll", ctx).Return([]*client.Client{coveredClient, remoteClient}, nil).Once()
		coverageRepo.On("GetByCompany", ctx, statsCompany.ID()).
			Return([]*coverage.CoverageArea{area}, nil).Once()
		companyRepo.On("Update", ctx, statsCompany).Return(nil).Once()

		_, factory := statsFixture(orderRepo, clientRepo, companyRepo, coverageRepo)
		handler := commands.NewRecomputeCompanyStatsCommandHandler(factory)

		cmd := commands.NewRecomputeCompanyStatsCommand()
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, company.Stats{
			Deliveries:       1,
			FailedDeliveries: 1,
			TotalSales:       12500,
		}, statsCompany.Stats())

		orderRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
		companyRepo.AssertExpectations(t)
		coverageRepo.AssertExpectations(t)
	})

	t.Run("should reset counters of a company with no coverage areas", func(t *testing.T) {
		bare := testCompany(t)
		require.NoError(t, bare.ReplaceStats(company.Stats{Deliveries: 7, TotalSales: 100}))

		coveredClient := testClient(t, -70.62, -33.42)

		orderRepo := new(MockOrderRepository)
		clientRepo := new(MockClientRepository)
		companyRepo := new(MockCompanyRepository)
		coverageRepo := new(MockCoverageAreaRepository)

		companyRepo.On("GetAll", ctx).Return([]*company.Company{bare}, nil).Once()
		orderRepo.On("GetAllCompleted", ctx).
			Return([]*order.Order{deliveredTestOrder(t, coveredClient.ID(), 12500)}, nil).Once()
		clientRepo.On("GetAll", ctx).Return([]*client.Client{coveredClient}, nil).Once()
		coverageRepo.On("GetByCompany", ctx, bare.ID()).Return([]*coverage.CoverageArea{}, nil).Once()
		companyRepo.On("Update", ctx, bare).Return(nil).Once()

		_, factory := statsFixture(orderRepo, clientRepo, companyRepo, coverageRepo)
		handler := commands.NewRecomputeCompanyStatsCommandHandler(factory)

		cmd := commands.NewRecomputeCompanyStatsCommand()
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, company.Stats{}, bare.Stats())
	})

	t.Run("should abort the batch when a read fails", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		clientRepo := new(MockClientRepository)
		companyRepo := new(MockCompanyRepository)
		coverageRepo := new(MockCoverageAreaRepository)

		companyRepo.On("GetAll", ctx).Return(nil, errors.New("database error")).Once()

		uow, factory := statsFixture(orderRepo, clientRepo, companyRepo, coverageRepo)
		handler := commands.NewRecomputeCompanyStatsCommandHandler(factory)

		cmd := commands.NewRecomputeCompanyStatsCommand()
		err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
