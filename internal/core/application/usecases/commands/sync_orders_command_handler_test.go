package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/checklist"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func syncRows() []services.ImportRow {
	return []services.ImportRow{
		{PurchaseOrder: "OC-1", SalesOrder: "SO-1", Details: order.Details{Client: "Nuevo", Channel: "mayoreo"}},
		{PurchaseOrder: "OC-2", SalesOrder: "SO-2", Details: order.Details{Client: "Existente", Channel: "Local"}},
		{PurchaseOrder: "OC-3", SalesOrder: "SO-3", Details: order.Details{Client: "Viejo", Channel: "Local"}},
	}
}

func TestSyncOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSyncOrdersCommand("manual")
	require.NoError(t, err)

	existing := activeOrder("OC-2", nil)

	source := new(MockSpreadsheetSource)
	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	channelRepo := new(MockChannelRepository)
	uow := new(MockUoW)
	factory := new(MockSyncUoWFactory)

	mock.InOrder(
		source.On("Rows", ctx).Return(syncRows(), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Identifiers", ctx).Return(map[string]struct{}{"OC-3": {}}, nil).Once(),
		orderRepo.On("GetAll", ctx).Return([]*order.Order{existing}, nil).Once(),
		uow.On("ChannelRepository").Return(channelRepo).Once(),
		channelRepo.On("AddMissing", ctx, []string{"Local", "Mayoreo"}).Return([]string{"Local"}, nil).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Identifier() == "OC-1" && o.Status() == order.Pending && len(o.Tasks()) == 2
		})).Return(nil).Once(),
		orderRepo.On("UpdateDetails", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSyncOrdersCommandHandler(factory, source, services.NewReconciler(checklist.DefaultCatalog()))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SyncOrdersResult{
		Rows:            3,
		Created:         1,
		Updated:         1,
		SkippedArchived: 1,
		NewChannels:     []string{"Local"},
	}, result)
	assert.Equal(t, "Existente", existing.Details().Client)
	source.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	channelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSyncOrdersCommandHandler_Handle_EmptySheet(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSyncOrdersCommand("startup")

	source := new(MockSpreadsheetSource)
	source.On("Rows", ctx).Return([]services.ImportRow{}, nil).Once()
	factory := new(MockSyncUoWFactory)

	handler := commands.NewSyncOrdersCommandHandler(factory, source, services.NewReconciler(checklist.DefaultCatalog()))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Empty)
	factory.AssertNotCalled(t, "Create")
}

func TestSyncOrdersCommandHandler_Handle_SourceError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSyncOrdersCommand("schedule")

	source := new(MockSpreadsheetSource)
	source.On("Rows", ctx).Return(nil, errors.New("graph unavailable")).Once()
	factory := new(MockSyncUoWFactory)

	handler := commands.NewSyncOrdersCommandHandler(factory, source, services.NewReconciler(checklist.DefaultCatalog()))
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "graph unavailable")
	factory.AssertNotCalled(t, "Create")
}

func TestSyncOrdersCommandHandler_Handle_AddFailsRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSyncOrdersCommand("manual")

	source := new(MockSpreadsheetSource)
	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	channelRepo := new(MockChannelRepository)
	uow := new(MockUoW)
	factory := new(MockSyncUoWFactory)

	source.On("Rows", ctx).Return(syncRows()[:1], nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	uow.On("ChannelRepository").Return(channelRepo).Once()
	archiveRepo.On("Identifiers", ctx).Return(map[string]struct{}{}, nil).Once()
	orderRepo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()
	channelRepo.On("AddMissing", ctx, []string{"Mayoreo"}).Return([]string{}, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("duplicate key")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSyncOrdersCommandHandler(factory, source, services.NewReconciler(checklist.DefaultCatalog()))
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate key")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestNewSyncOrdersCommand(t *testing.T) {
	cmd, err := commands.NewSyncOrdersCommand("watch")
	require.NoError(t, err)
	assert.Equal(t, "watch", cmd.Trigger())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewSyncOrdersCommand("")
	require.Error(t, err)

	require.ErrorIs(t, commands.SyncOrdersCommand{}.Validate(), commands.ErrSyncOrdersCommandIsNotConstructed)
}
