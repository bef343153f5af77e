package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tracking/api"
	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/checklistfile"
	"tracking/internal/adapters/out/portalstore"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/spreadsheet"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/checklist"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"
	"tracking/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics
	location   *time.Location
	clock      func() time.Time

	catalog checklist.Catalog
	portals *portalstore.FileStore
	source  ports.SpreadsheetSource
	syncer  *jobs.SyncRunner
}

// NewCompositionRoot loads the file-backed collaborators and builds the
// spreadsheet source. It does not touch the network.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	catalog, err := checklistfile.Load(cfg.ChecklistFile)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		metrics:    metrics.New(),
		location:   location,
		clock:      time.Now,
		catalog:    catalog,
		portals:    portalstore.NewFileStore(cfg.PortalsFile),
		source:     newSpreadsheetSource(ctx, cfg),
	}
	c.syncer = jobs.NewSyncRunner(c.CreateSyncOrdersCommandHandler(), c.metrics, logger)

	return c, nil
}

func newSpreadsheetSource(ctx context.Context, cfg Config) ports.SpreadsheetSource {
	if cfg.SpreadsheetSource == SpreadsheetSourceFile {
		return spreadsheet.NewFileSource(cfg.SpreadsheetPath, cfg.SpreadsheetSheet)
	}

	client := spreadsheet.GraphClient(ctx, spreadsheet.GraphCredentials{
		TenantID:     cfg.AzureTenantID,
		ClientID:     cfg.AzureClientID,
		ClientSecret: cfg.AzureClientSecret,
	})
	return spreadsheet.NewSharePointSource(client, spreadsheet.GraphBaseURL, cfg.SharePointSharingURL, cfg.SpreadsheetSheet)
}

// SyncRunner serializes every import regardless of who triggers it.
func (c *CompositionRoot) SyncRunner() *jobs.SyncRunner {
	return c.syncer
}

func (c *CompositionRoot) Migrate(ctx context.Context) error {
	if err := postgres.Migrate(ctx, c.gormDB); err != nil {
		return err
	}
	return c.CreateSeedPermissionsCommandHandler().Handle(ctx, commands.NewSeedPermissionsCommand())
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncOrdersCommandHandler(f, c.source, services.NewReconciler(c.catalog))
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateNotesCommandHandler() commands.NotesCommandHandler {
	return commands.NewNotesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTaskCommandHandler() commands.UpdateTaskCommandHandler {
	return commands.NewUpdateTaskCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveOrdersCommandHandler() commands.ArchiveOrdersCommandHandler {
	return commands.NewArchiveOrdersCommandHandler(c.archiveUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReleaseArchivedCommandHandler() commands.ReleaseArchivedCommandHandler {
	return commands.NewReleaseArchivedCommandHandler(c.archiveUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateCreateBlockCommandHandler() commands.CreateBlockCommandHandler {
	return commands.NewCreateBlockCommandHandler(c.blockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUngroupOrdersCommandHandler() commands.UngroupOrdersCommandHandler {
	return commands.NewUngroupOrdersCommandHandler(c.blockUoWFactory())
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.accessUoWFactory(), c.cfg.SuperUserEmail)
}

func (c *CompositionRoot) CreateUserGrantsCommandHandler() commands.UserGrantsCommandHandler {
	return commands.NewUserGrantsCommandHandler(c.accessUoWFactory())
}

func (c *CompositionRoot) CreateSeedPermissionsCommandHandler() commands.SeedPermissionsCommandHandler {
	return commands.NewSeedPermissionsCommandHandler(c.accessUoWFactory())
}

func (c *CompositionRoot) CreatePortalCommandHandler() commands.PortalCommandHandler {
	return commands.NewPortalCommandHandler(c.portals)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportArchivedOrdersQueryHandler() queries.ExportArchivedOrdersQueryHandler {
	return queries.NewExportArchivedOrdersQueryHandler(
		c.CreateGetArchivedOrdersQueryHandler(),
		spreadsheet.NewHistoryWriter(c.location),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListChannelsQueryHandler() queries.ListChannelsQueryHandler {
	return queries.NewListChannelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPortalsQueryHandler() queries.ListPortalsQueryHandler {
	return queries.NewListPortalsQueryHandler(c.portals)
}

// CreateHandlers bundles every use case served over HTTP.
func (c *CompositionRoot) CreateHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		ActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		Sync:         c.syncer,
		Status:       c.CreateUpdateStatusCommandHandler(),
		Notes:        c.CreateNotesCommandHandler(),
		Tasks:        c.CreateUpdateTaskCommandHandler(),
		Archive:      c.CreateArchiveOrdersCommandHandler(),
		Release:      c.CreateReleaseArchivedCommandHandler(),
		CreateBlock:  c.CreateCreateBlockCommandHandler(),
		Ungroup:      c.CreateUngroupOrdersCommandHandler(),
		History:      c.CreateGetArchivedOrdersQueryHandler(),
		Export:       c.CreateExportArchivedOrdersQueryHandler(),
		CurrentUser:  c.CreateGetCurrentUserQueryHandler(),
		Channels:     c.CreateListChannelsQueryHandler(),
		Users:        c.CreateListUsersQueryHandler(),
		Grants:       c.CreateUserGrantsCommandHandler(),
		Portals:      c.CreateListPortalsQueryHandler(),
		PortalEditor: c.CreatePortalCommandHandler(),
	}
}

// CreateRouter discovers the Entra ID issuer, so it needs network access.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	store, err := httpadapter.NewSessionStore(httpadapter.SessionOptions{
		Type:   c.cfg.SessionType,
		Dir:    c.cfg.SessionDir,
		Secret: []byte(c.cfg.SessionSecret),
		Secure: c.cfg.SessionSecure,
	})
	if err != nil {
		return nil, err
	}
	if c.cfg.SessionSecret == "" {
		c.logger.WarnContext(ctx, "SESSION_SECRET is not set, sessions will not survive a restart")
	}

	provider, err := httpadapter.NewEntraProvider(ctx, httpadapter.EntraConfig{
		TenantID:     c.cfg.AzureTenantID,
		ClientID:     c.cfg.AzureClientID,
		ClientSecret: c.cfg.AzureClientSecret,
		RedirectURL:  c.cfg.OAuthRedirectURL,
	})
	if err != nil {
		return nil, err
	}

	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:    httpadapter.NewServer(c.CreateHandlers(), c.location, c.logger),
		Auth:      httpadapter.NewAuth(provider, store, c.CreateLoginUserCommandHandler(), c.logger),
		Sessions:  store,
		Users:     c.lookupUser,
		Metrics:   c.metrics,
		OpenAPI:   doc,
		StaticDir: c.cfg.StaticDir,
		Logger:    c.logger,
	})
}

// CreateJobManager registers only the jobs that are enabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var enabled []jobs.Job
	if c.cfg.SyncSchedule != "" {
		enabled = append(enabled, jobs.NewScheduledSyncJob(c.syncer, c.cfg.SyncSchedule, c.logger))
	}
	if c.cfg.WatchSpreadsheet {
		enabled = append(enabled, jobs.NewSpreadsheetWatchJob(c.syncer, c.cfg.SpreadsheetPath, c.cfg.WatchDebounce, c.logger))
	}
	return jobs.NewJobManager(c.logger, enabled...)
}

func (c *CompositionRoot) lookupUser(ctx context.Context, id int64) (*access.User, error) {
	return c.uowFactory.Create().UserRepository().Get(ctx, id)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) blockUoWFactory() commands.BlockUoWFactory {
	return FuncBlockUoWFactory(func() commands.BlockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) archiveUoWFactory() commands.ArchiveUoWFactory {
	return FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accessUoWFactory() commands.AccessUoWFactory {
	return FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBlockUoWFactory func() commands.BlockUoW

func (f FuncBlockUoWFactory) Create() commands.BlockUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncSyncUoWFactory func() commands.SyncUoW

func (f FuncSyncUoWFactory) Create() commands.SyncUoW {
	return f()
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}
