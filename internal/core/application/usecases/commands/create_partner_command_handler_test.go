package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartnerUoW struct{ mock.Mock }

func (m *MockPartnerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockPartnerUoW) AreaRepository() ports.AreaRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaRepository)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

func TestCreatePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	areaID := kernel.NewUUID()
	testArea, err := area.NewArea(areaID, "Downtown")
	require.NoError(t, err)

	cmd, err := commands.NewCreatePartnerCommand(
		kernel.NewUUID(), "Jane Rider", "jane@example.com", "+10000000001",
		[]kernel.UUID{areaID}, nil)
	require.NoError(t, err)

	partnerRepo := new(MockDispatchPartnerRepository)
	areaRepo := new(MockAreaRepository)
	uow := new(MockPartnerUoW)

	var created *partner.Partner

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("AreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, areaID).Return(testArea, nil).Once(),
		partnerRepo.On("Add", ctx, mock.AnythingOfType("*partner.Partner")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*partner.Partner)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive())
	assert.Equal(t, 0, created.CurrentLoad())
	assert.Nil(t, created.Shift())

	partnerRepo.AssertExpectations(t)
	areaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePartnerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()

	areaID := kernel.NewUUID()
	existing, err := partner.NewPartner(
		kernel.NewUUID(), "John Rider", "jane@example.com", "+10000000002",
		[]kernel.UUID{areaID})
	require.NoError(t, err)

	cmd, err := commands.NewCreatePartnerCommand(
		kernel.NewUUID(), "Jane Rider", "jane@example.com", "+10000000001",
		[]kernel.UUID{areaID}, nil)
	require.NoError(t, err)

	partnerRepo := new(MockDispatchPartnerRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "jane@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPartnerEmailAlreadyExists)
	partnerRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreatePartnerCommandHandler_Handle_WithShift(t *testing.T) {
	ctx := t.Context()

	areaID := kernel.NewUUID()
	testArea, err := area.NewArea(areaID, "Downtown")
	require.NoError(t, err)

	start, err := kernel.ParseTimeOfDay("08:00")
	require.NoError(t, err)
	end, err := kernel.ParseTimeOfDay("17:00")
	require.NoError(t, err)
	shift, err := partner.NewShift(start, end)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePartnerCommand(
		kernel.NewUUID(), "Jane Rider", "jane@example.com", "+10000000001",
		[]kernel.UUID{areaID}, &shift)
	require.NoError(t, err)

	partnerRepo := new(MockDispatchPartnerRepository)
	areaRepo := new(MockAreaRepository)
	uow := new(MockPartnerUoW)

	var created *partner.Partner

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("AreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, areaID).Return(testArea, nil).Once(),
		partnerRepo.On("Add", ctx, mock.AnythingOfType("*partner.Partner")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*partner.Partner)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.Shift())
	assert.Equal(t, "08:00-17:00", created.Shift().String())
}

func TestNewCreatePartnerCommand_Invalid(t *testing.T) {
	areaIDs := []kernel.UUID{kernel.NewUUID()}

	tests := []struct {
		name    string
		pname   string
		email   string
		phone   string
		areas   []kernel.UUID
		wantErr error
	}{
		{"empty name", "", "a@b.c", "+1", areaIDs, commands.ErrPartnerNameIsRequired},
		{"empty email", "Jane", "", "+1", areaIDs, commands.ErrPartnerEmailIsRequired},
		{"empty phone", "Jane", "a@b.c", "", areaIDs, commands.ErrPartnerPhoneIsRequired},
		{"no areas", "Jane", "a@b.c", "+1", nil, commands.ErrAreaIDsAreRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreatePartnerCommand(
				kernel.NewUUID(), tt.pname, tt.email, tt.phone, tt.areas, nil)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
