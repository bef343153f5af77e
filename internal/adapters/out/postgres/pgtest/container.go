// Package pgtest starts a throwaway PostgreSQL for integration suites.
package pgtest

import (
	"context"
	"time"

	adapter "tracking/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables is the truncate list covering every migrated table.
const Tables = "tasks, orders, blocks, archived_orders, user_permissions, user_channels, users, permissions, channels"

// Start runs a postgres:15-alpine container and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	if err = adapter.Migrate(ctx, db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and resets identity sequences.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

// Tracker records TrackAggregate calls.
type Tracker struct {
	Keys []string
}

func (t *Tracker) TrackAggregate(key string, _ any) {
	t.Keys = append(t.Keys, key)
}
