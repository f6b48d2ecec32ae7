package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/application/usecases/commands"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/dealer"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/ports"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByDealer(ctx context.Context, dealerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllCompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDealerRepository struct{ mock.Mock }

func (m *MockDealerRepository) Add(ctx context.Context, d *dealer.Dealer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealerRepository) Update(ctx context.Context, d *dealer.Dealer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealerRepository) Get(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dealer.Dealer), args.Error(1)
}

func (m *MockDealerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dealer.Dealer), args.Error(1)
}

func (m *MockDealerRepository) GetAll(ctx context.Context) ([]*dealer.Dealer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dealer.Dealer), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

type MockCoverageAreaRepository struct{ mock.Mock }

func (m *MockCoverageAreaRepository) Add(ctx context.Context, a *coverage.CoverageArea) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCoverageAreaRepository) Get(ctx context.Context, id kernel.UUID) (*coverage.CoverageArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coverage.CoverageArea), args.Error(1)
}

func (m *MockCoverageAreaRepository) GetAll(ctx context.Context) ([]*coverage.CoverageArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coverage.CoverageArea), args.Error(1)
}

func (m *MockCoverageAreaRepository) GetByCompany(ctx context.Context, companyID kernel.UUID) ([]*coverage.CoverageArea, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coverage.CoverageArea), args.Error(1)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) DealerRepository() ports.DealerRepository {
	args := m.Called()
	return args.Get(0).(ports.DealerRepository)
}

func (m *MockDispatchUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockDispatchUoW) CoverageAreaRepository() ports.CoverageAreaRepository {
	args := m.Called()
	return args.Get(0).(ports.CoverageAreaRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

func pendingTestOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), clientID, time.Now().UTC(), 12500)
	require.NoError(t, err)
	return o
}

func testDealer(t *testing.T) *dealer.Dealer {
	t.Helper()

	d, err := dealer.NewDealer(kernel.NewUUID(), "Speedy", kernel.NewPoint(-70.61, -33.41))
	require.NoError(t, err)
	return d
}

func testClient(t *testing.T, lon, lat float64) *client.Client {
	t.Helper()

	c, err := client.NewClient(kernel.NewUUID(), "Maria", "Av. Providencia 1234", kernel.NewPoint(lon, lat))
	require.NoError(t, err)
	return c
}

func coverageSquare(t *testing.T) *coverage.CoverageArea {
	t.Helper()

	polygon, err := kernel.NewPolygon([]kernel.Point{
		kernel.NewPoint(-70.65, -33.45),
		kernel.NewPoint(-70.60, -33.45),
		kernel.NewPoint(-70.60, -33.40),
		kernel.NewPoint(-70.65, -33.40),
		kernel.NewPoint(-70.65, -33.45),
	})
	require.NoError(t, err)

	area, err := coverage.NewCoverageArea(kernel.NewUUID(), "downtown", polygon)
	require.NoError(t, err)
	return area
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDealerAgg := testDealer(t)
	testOrder := pendingTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDealerAgg.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	dealerRepo := new(MockDealerRepository)
	coverageRepo := new(MockCoverageAreaRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("GetForUpdate", ctx, testDealerAgg.ID()).Return(testDealerAgg, nil).Once(),
		uow.On("CoverageAreaRepository").Return(coverageRepo).Once(),
		coverageRepo.On("GetAll", ctx).Return([]*coverage.CoverageArea{}, nil).Once(),
		orderRepo.On("GetActiveByDealer", ctx, testDealerAgg.ID()).Return(nil, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
	require.NotNil(t, testOrder.Dealer())
	assert.True(t, testOrder.Dealer().IsEqual(testDealerAgg.ID()))
	orderRepo.AssertExpectations(t)
	dealerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_CoveredClient(t *testing.T) {
	ctx := t.Context()

	insideClient := testClient(t, -70.62, -33.42)
	testDealerAgg := testDealer(t)
	testOrder := pendingTestOrder(t, insideClient.ID())
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDealerAgg.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	dealerRepo := new(MockDealerRepository)
	clientRepo := new(MockClientRepository)
	coverageRepo := new(MockCoverageAreaRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("GetForUpdate", ctx, testDealerAgg.ID()).Return(testDealerAgg, nil).Once(),
		uow.On("CoverageAreaRepository").Return(coverageRepo).Once(),
		coverageRepo.On("GetAll", ctx).Return([]*coverage.CoverageArea{coverageSquare(t)}, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, insideClient.ID()).Return(insideClient, nil).Once(),
		orderRepo.On("GetActiveByDealer", ctx, testDealerAgg.ID()).Return(nil, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
}

func TestAssignOrderCommandHandler_Handle_ClientNotCovered(t *testing.T) {
	ctx := t.Context()

	outsideClient := testClient(t, -70.80, -33.42)
	testDealerAgg := testDealer(t)
	testOrder := pendingTestOrder(t, outsideClient.ID())
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDealerAgg.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	dealerRepo := new(MockDealerRepository)
	clientRepo := new(MockClientRepository)
	coverageRepo := new(MockCoverageAreaRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("GetForUpdate", ctx, testDealerAgg.ID()).Return(testDealerAgg, nil).Once(),
		uow.On("CoverageAreaRepository").Return(coverageRepo).Once(),
		coverageRepo.On("GetAll", ctx).Return([]*coverage.CoverageArea{coverageSquare(t)}, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, outsideClient.ID()).Return(outsideClient, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrClientNotCovered)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestAssignOrderCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()

	busyDealerID := kernel.NewUUID()
	inProgress := pendingTestOrder(t, kernel.NewUUID())
	require.NoError(t, inProgress.Assign(busyDealerID))

	cmd, err := commands.NewAssignOrderCommand(inProgress.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, inProgress.ID()).Return(inProgress, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotPending)
}

func TestAssignOrderCommandHandler_Handle_DealerNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingTestOrder(t, kernel.NewUUID())
	dealerID := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), dealerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	dealerRepo := new(MockDealerRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("GetForUpdate", ctx, dealerID).Return(nil, errs.NewObjectNotFoundError("dealer", dealerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDealerNotFound)
}

func TestAssignOrderCommandHandler_Handle_DealerHasActiveOrder(t *testing.T) {
	ctx := t.Context()

	testDealerAgg := testDealer(t)

	activeOrder := pendingTestOrder(t, kernel.NewUUID())
	require.NoError(t, activeOrder.Assign(testDealerAgg.ID()))

	testOrder := pendingTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDealerAgg.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	dealerRepo := new(MockDealerRepository)
	coverageRepo := new(MockCoverageAreaRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("GetForUpdate", ctx, testDealerAgg.ID()).Return(testDealerAgg, nil).Once(),
		uow.On("CoverageAreaRepository").Return(coverageRepo).Once(),
		coverageRepo.On("GetAll", ctx).Return([]*coverage.CoverageArea{}, nil).Once(),
		orderRepo.On("GetActiveByDealer", ctx, testDealerAgg.ID()).Return(activeOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDealerHasActiveOrder)
	assert.Equal(t, order.Pending, testOrder.Status())
}

func TestAssignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignOrderCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
