package postgres

import (
	"context"
	"fmt"
	"net/url"

	"tracking/internal/adapters/out/postgres/accessrepo"
	"tracking/internal/adapters/out/postgres/archiverepo"
	"tracking/internal/adapters/out/postgres/blockrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&blockrepo.BlockDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.TaskDTO{},
		&archiverepo.ArchivedOrderDTO{},
		&accessrepo.PermissionDTO{},
		&accessrepo.ChannelDTO{},
		&accessrepo.UserDTO{},
	}
}

// Migrate creates or alters the tables, including the grant join tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// DSN renders a libpq connection URL. Credentials are escaped.
func DSN(host, port, user, password, dbName, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects GORM to PostgreSQL. SQL logging is silent unless verbose.
func Open(dsn string, verbose bool) (*gorm.DB, error) {
	level := logger.Silent
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
