package queries_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/accessrepo"
	"tracking/internal/adapters/out/postgres/archiverepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/pgtest"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type stubWorkbookWriter struct {
	rows []queries.ArchivedOrder
	err  error
}

func (w *stubWorkbookWriter) WriteHistory(out io.Writer, rows []queries.ArchivedOrder) error {
	w.rows = rows
	if w.err != nil {
		return w.err
	}
	_, err := out.Write([]byte("xlsx"))
	return err
}

type stubPortalDirectory struct {
	directory *portal.Directory
}

func (s stubPortalDirectory) Load(context.Context) (*portal.Directory, error) {
	return s.directory, nil
}

func (s stubPortalDirectory) Update(_ context.Context, fn func(*portal.Directory) error) error {
	return fn(s.directory)
}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	orders   *orderrepo.GormOrderRepository
	archive  *archiverepo.GormArchiveRepository
	users    *accessrepo.GormUserRepository
	channels *accessrepo.GormChannelRepository

	super  *access.User
	normal *access.User
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	tracker := &pgtest.Tracker{}
	suite.orders = orderrepo.NewGormOrderRepository(db, tracker)
	suite.archive = archiverepo.NewGormArchiveRepository(db, tracker)
	suite.users = accessrepo.NewGormUserRepository(db, tracker)
	suite.channels = accessrepo.NewGormChannelRepository(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.Require().NoError(accessrepo.NewGormPermissionRepository(suite.db).Seed(ctx, access.DefaultPermissions()))
	_, err := suite.channels.AddMissing(ctx, []string{"Mayoreo", "Autoservicio"})
	suite.Require().NoError(err)

	suite.super, err = access.NewUser("admin@example.com", "Admin", access.RoleSuper)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(ctx, suite.super))

	suite.normal, err = access.NewUser("ops@example.com", "Ops", access.RoleNormal)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(ctx, suite.normal))
	suite.Require().NoError(suite.normal.GrantPermissions([]access.Permission{access.PermEditNotes, access.PermManagePortals}))
	suite.Require().NoError(suite.normal.AllowChannels([]string{"Mayoreo"}))
	suite.Require().NoError(suite.users.Update(context.Background(), suite.normal))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetActiveOrders_ScopesByChannel() {
	ctx := context.Background()
	suite.addOrder("OC-1", "Mayoreo", "2026-10-15", "Revisar", "Etiquetar")
	suite.addOrder("OC-2", "Autoservicio", "2026-10-01")

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, fixedClock)

	query, err := queries.NewGetActiveOrdersQuery(suite.normal)
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Orders, 1)

	got := resp.Orders[0]
	suite.Equal("OC-1", got.Identifier)
	suite.Equal(string(order.Urgent), got.Priority)
	suite.Require().Len(got.Tasks, 2)
	suite.Equal("Revisar", got.Tasks[0].Description)
	suite.Equal([]string{"Autoservicio", "Mayoreo"}, resp.Channels)

	query, err = queries.NewGetActiveOrdersQuery(suite.super)
	suite.Require().NoError(err)
	resp, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(resp.Orders, 2)
	suite.Equal(string(order.Overdue), resp.Orders[1].Priority)
	suite.Empty(resp.Orders[1].Tasks)
}

func (suite *QueriesIntegrationTestSuite) TestGetActiveOrders_InvalidQuery() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db, fixedClock)

	_, err := handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

	suite.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestGetArchivedOrders_FiltersAndOrders() {
	ctx := context.Background()
	suite.addEntry("OC-1", "Cliente Norte", "Mayoreo", "Monterrey", fixedNow.Add(-48*time.Hour))
	suite.addEntry("OC-2", "Cliente Sur", "Mayoreo", "Saltillo", fixedNow.Add(-time.Hour))
	suite.addEntry("OC-3", "Cliente Norte", "Autoservicio", "Monterrey", fixedNow)

	handler := queries.NewGetArchivedOrdersQueryHandler(suite.db)

	all, err := queries.NewGetArchivedOrdersQuery(suite.super, archive.Filter{})
	suite.Require().NoError(err)
	rows, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("OC-3", rows[0].Identifier)
	suite.Equal("OC-1", rows[2].Identifier)

	scoped, err := queries.NewGetArchivedOrdersQuery(suite.normal, archive.Filter{})
	suite.Require().NoError(err)
	rows, err = handler.Handle(ctx, scoped)
	suite.Require().NoError(err)
	suite.Len(rows, 2)

	filter := archive.NewFilter("norte", "", archive.AllChannels, "2026-10-12", "2026-10-13", time.UTC)
	filtered, err := queries.NewGetArchivedOrdersQuery(suite.super, filter)
	suite.Require().NoError(err)
	rows, err = handler.Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("OC-1", rows[0].Identifier)
	suite.Equal("Monterrey", rows[0].Locality)
}

func (suite *QueriesIntegrationTestSuite) TestGetArchivedOrders_LikeWildcardsAreLiteral() {
	ctx := context.Background()
	suite.addEntry("OC-1", "Cliente Norte", "Mayoreo", "Monterrey", fixedNow)

	filter := archive.NewFilter("%", "", "", "", "", time.UTC)
	query, err := queries.NewGetArchivedOrdersQuery(suite.super, filter)
	suite.Require().NoError(err)

	rows, err := queries.NewGetArchivedOrdersQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *QueriesIntegrationTestSuite) TestExportArchivedOrders() {
	ctx := context.Background()
	writer := &stubWorkbookWriter{}
	handler := queries.NewExportArchivedOrdersQueryHandler(queries.NewGetArchivedOrdersQueryHandler(suite.db), writer, fixedClock)

	query, err := queries.NewExportArchivedOrdersQuery(suite.super, archive.Filter{})
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	suite.addEntry("OC-1", "Cliente Norte", "Mayoreo", "Monterrey", fixedNow)

	file, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("historial_logistica_2026-10-14.xlsx", file.Filename)
	suite.Equal([]byte("xlsx"), file.Content)
	suite.Len(writer.rows, 1)

	writer.err = errors.New("disk full")
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, writer.err)
}

func (suite *QueriesIntegrationTestSuite) TestGetCurrentUser() {
	ctx := context.Background()
	handler := queries.NewGetCurrentUserQueryHandler(suite.db)

	query, err := queries.NewGetCurrentUserQuery(suite.super)
	suite.Require().NoError(err)
	me, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("super", me.Role)
	suite.Len(me.Permissions, len(access.DefaultPermissions()))
	suite.True(me.CanManagePortals)

	query, err = queries.NewGetCurrentUserQuery(suite.normal)
	suite.Require().NoError(err)
	me, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("ops@example.com", me.Email)
	suite.ElementsMatch([]string{"edit_notes", "manage_portals"}, me.Permissions)
	suite.True(me.CanManagePortals)
}

func (suite *QueriesIntegrationTestSuite) TestListUsers() {
	ctx := context.Background()
	handler := queries.NewListUsersQueryHandler(suite.db)

	query, err := queries.NewListUsersQuery(suite.super)
	suite.Require().NoError(err)
	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(resp.Users, 1)
	suite.Equal("ops@example.com", resp.Users[0].Email)
	suite.Equal([]string{"edit_notes", "manage_portals"}, resp.Users[0].Permissions)
	suite.Equal([]string{"Mayoreo"}, resp.Users[0].Channels)
	suite.Len(resp.Permissions, len(access.DefaultPermissions()))
	suite.Equal([]string{"Autoservicio", "Mayoreo"}, resp.Channels)

	query, err = queries.NewListUsersQuery(suite.normal)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrForbidden)
}

func (suite *QueriesIntegrationTestSuite) TestListChannels() {
	channels, err := queries.NewListChannelsQueryHandler(suite.db).Handle(context.Background(), queries.NewListChannelsQuery())

	suite.Require().NoError(err)
	suite.Equal([]string{"Autoservicio", "Mayoreo"}, channels)
}

func (suite *QueriesIntegrationTestSuite) TestListPortals() {
	directory := portal.NewDirectory(nil)
	_, err := directory.AddClient("Cliente Norte")
	suite.Require().NoError(err)

	query, err := queries.NewListPortalsQuery(suite.normal)
	suite.Require().NoError(err)

	clients, err := queries.NewListPortalsQueryHandler(stubPortalDirectory{directory}).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(clients, 1)
	suite.Equal("Cliente Norte", clients[0].Name)
}

func (suite *QueriesIntegrationTestSuite) addOrder(identifier, channel, date string, tasks ...string) {
	o, err := order.NewOrder(identifier, order.Details{Client: "Cliente", Channel: channel, DeliveryDate: date}, tasks)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) addEntry(identifier, client, channel, locality string, at time.Time) {
	entry := &archive.Entry{
		Identifier:  identifier,
		Details:     order.Details{Client: client, Channel: channel, Locality: locality, DeliveryDate: "2026-10-01"},
		FinalStatus: order.Delivered,
		ArchivedAt:  at,
	}
	suite.Require().NoError(suite.archive.Add(context.Background(), entry))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
