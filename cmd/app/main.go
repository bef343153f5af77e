package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking/cmd"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracking",
		Short:         "Logistics order tracking board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSyncCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server and the enabled sync jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			if err = configs.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			app, err := bootstrap(ctx, configs)
			if err != nil {
				return err
			}
			if err = app.Migrate(ctx); err != nil {
				return err
			}

			return serve(ctx, app, configs)
		},
	}
}

func serve(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	manager := app.CreateJobManager()
	if err = manager.StartAll(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	if configs.SyncOnStart {
		g.Go(func() error {
			// Failures are logged by the runner and must not stop the server.
			_, _ = app.SyncRunner().Run(ctx, commands.TriggerStartup)
			return nil
		})
	}

	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		manager.StopAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Import the spreadsheet once and exit",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			if err = errors.Join(configs.ValidateDatabase(), configs.ValidateSpreadsheet()); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			app, err := bootstrap(c.Context(), configs)
			if err != nil {
				return err
			}

			res, err := app.SyncRunner().Run(c.Context(), commands.TriggerCLI)
			if err != nil {
				return err
			}
			if res.Empty {
				_, err = fmt.Fprintln(c.OutOrStdout(), "No se encontraron datos.")
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "created=%d updated=%d skipped_archived=%d\n",
				res.Created, res.Updated, res.SkippedArchived)
			return err
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the permission catalog",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			if err = configs.ValidateDatabase(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			app, err := bootstrap(c.Context(), configs)
			if err != nil {
				return err
			}
			return app.Migrate(c.Context())
		},
	}
}

func bootstrap(ctx context.Context, configs cmd.Config) (*cmd.CompositionRoot, error) {
	logger, err := logging.New(os.Stdout, configs.LogLevel, configs.LogFormat)
	if err != nil {
		return nil, err
	}

	dsn := postgres.DSN(configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	db, err := postgres.Open(dsn, configs.DBVerbose)
	if err != nil {
		return nil, err
	}

	return cmd.NewCompositionRoot(ctx, configs, db, logger)
}
