package commands_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/core/domain/model/block"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockOrderRepository) UpdateDetails(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, identifier string) (*order.Order, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, identifiers []string) ([]*order.Order, error) {
	args := m.Called(ctx, identifiers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByBlock(ctx context.Context, blockID int64) ([]*order.Order, error) {
	args := m.Called(ctx, blockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTask(ctx context.Context, taskID int64) (*order.Order, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

type MockBlockRepository struct{ mock.Mock }

func (m *MockBlockRepository) Add(ctx context.Context, b *block.Block) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBlockRepository) DeleteIfEmpty(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, e *archive.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockArchiveRepository) Get(ctx context.Context, id int64) (*archive.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*archive.Entry), args.Error(1)
}

func (m *MockArchiveRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArchiveRepository) Identifiers(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *access.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *access.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*access.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*access.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.User), args.Error(1)
}

type MockChannelRepository struct{ mock.Mock }

func (m *MockChannelRepository) AddMissing(ctx context.Context, names []string) ([]string, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPermissionRepository struct{ mock.Mock }

func (m *MockPermissionRepository) Seed(ctx context.Context, permissions []access.PermissionInfo) error {
	args := m.Called(ctx, permissions)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BlockRepository() ports.BlockRepository {
	args := m.Called()
	return args.Get(0).(ports.BlockRepository)
}

func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ChannelRepository() ports.ChannelRepository {
	args := m.Called()
	return args.Get(0).(ports.ChannelRepository)
}

func (m *MockUoW) PermissionRepository() ports.PermissionRepository {
	args := m.Called()
	return args.Get(0).(ports.PermissionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBlockUoWFactory struct{ mock.Mock }

func (m *MockBlockUoWFactory) Create() commands.BlockUoW {
	args := m.Called()
	return args.Get(0).(commands.BlockUoW)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}

type MockSyncUoWFactory struct{ mock.Mock }

func (m *MockSyncUoWFactory) Create() commands.SyncUoW {
	args := m.Called()
	return args.Get(0).(commands.SyncUoW)
}

type MockAccessUoWFactory struct{ mock.Mock }

func (m *MockAccessUoWFactory) Create() commands.AccessUoW {
	args := m.Called()
	return args.Get(0).(commands.AccessUoW)
}

type MockSpreadsheetSource struct{ mock.Mock }

func (m *MockSpreadsheetSource) Rows(ctx context.Context) ([]services.ImportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.ImportRow), args.Error(1)
}

// MockPortalDirectory runs Update callbacks against an in-memory directory.
type MockPortalDirectory struct {
	mock.Mock
	Directory *portal.Directory
}

func (m *MockPortalDirectory) Load(ctx context.Context) (*portal.Directory, error) {
	args := m.Called(ctx)
	return m.Directory, args.Error(0)
}

func (m *MockPortalDirectory) Update(ctx context.Context, fn func(*portal.Directory) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Directory)
}

func normalUser(perms ...access.Permission) *access.User {
	u, err := access.RestoreUser(10, "ana@example.com", "Ana", access.RoleNormal, perms, []string{"Mayoreo"})
	if err != nil {
		panic(err)
	}
	return u
}

func superUser() *access.User {
	u, err := access.RestoreUser(1, "boss@example.com", "Jefe", access.RoleSuper, nil, nil)
	if err != nil {
		panic(err)
	}
	return u
}

func activeOrder(identifier string, blockID *int64) *order.Order {
	return activeOrderIn("Mayoreo", identifier, blockID)
}

func activeOrderIn(channel, identifier string, blockID *int64) *order.Order {
	o, err := order.RestoreOrder(identifier, order.Details{Client: "Comercial", Channel: channel},
		order.Pending, "", blockID, []order.Task{{ID: 1, Description: "Tarea 1 Genérica"}})
	if err != nil {
		panic(err)
	}
	return o
}
