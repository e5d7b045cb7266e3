package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAreaRepository struct{ mock.Mock }

func (m *MockAreaRepository) Add(ctx context.Context, a *area.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAreaRepository) Update(ctx context.Context, a *area.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAreaRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*area.Area), args.Error(1)
}

func (m *MockAreaRepository) GetAll(ctx context.Context) ([]*area.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*area.Area), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) AreaRepository() ports.AreaRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	areaID := kernel.NewUUID()
	testArea, err := area.NewArea(areaID, "Downtown")
	require.NoError(t, err)

	scheduled, err := kernel.ParseTimeOfDay("14:30")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-1001", testCustomer(t), areaID, scheduled, 249.90, testItems(t),
	)
	require.NoError(t, err)

	orderRepo := new(MockDispatchOrderRepository)
	areaRepo := new(MockAreaRepository)
	uow := new(MockOrderUoW)

	var created *order.Order

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, areaID).Return(testArea, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "ORD-1001", created.OrderNumber())
	assert.Equal(t, testCustomer(t), created.Customer())
	assert.Equal(t, testItems(t), created.Items())
	assert.Nil(t, created.Partner())

	orderRepo.AssertExpectations(t)
	areaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AreaNotFound(t *testing.T) {
	ctx := t.Context()

	areaID := kernel.NewUUID()
	scheduled, err := kernel.ParseTimeOfDay("14:30")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-1001", testCustomer(t), areaID, scheduled, 249.90, testItems(t),
	)
	require.NoError(t, err)

	areaRepo := new(MockAreaRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, areaID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	scheduled, err := kernel.ParseTimeOfDay("14:30")
	require.NoError(t, err)

	tests := []struct {
		name        string
		orderNumber string
		customer    order.Customer
		amount      float64
		items       []order.Item
		wantErr     error
	}{
		{"empty order number", "", testCustomer(t), 100, testItems(t), commands.ErrOrderNumberIsRequired},
		{"zero customer", "ORD-1", order.Customer{}, 100, testItems(t), order.ErrCustomerNameIsRequired},
		{"zero amount", "ORD-1", testCustomer(t), 0, testItems(t), commands.ErrTotalAmountIsInvalid},
		{"negative amount", "ORD-1", testCustomer(t), -5, testItems(t), commands.ErrTotalAmountIsInvalid},
		{"no items", "ORD-1", testCustomer(t), 100, nil, commands.ErrOrderItemsAreRequired},
		{"zero item", "ORD-1", testCustomer(t), 100, []order.Item{{}}, order.ErrItemNameIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(
				kernel.NewUUID(), tt.orderNumber, tt.customer, kernel.NewUUID(), scheduled, tt.amount, tt.items)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Jane Doe", "+15550100")
	require.NoError(t, err)
	return customer
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Margherita", 2, 124.95)
	require.NoError(t, err)
	return []order.Item{item}
}
