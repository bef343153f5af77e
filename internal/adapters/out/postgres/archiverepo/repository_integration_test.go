package archiverepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/archiverepo"
	"tracking/internal/adapters/out/postgres/pgtest"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ArchiveRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *archiverepo.GormArchiveRepository
}

func (suite *ArchiveRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ArchiveRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = archiverepo.NewGormArchiveRepository(suite.db, &pgtest.Tracker{})
}

func (suite *ArchiveRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ArchiveRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	boxes := 3
	archivedAt := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	entry := &archive.Entry{
		Identifier: "OC-1",
		Details: order.Details{
			Client:       "Cliente Sur",
			Channel:      "Mayoreo",
			DeliveryDate: "2026-10-10",
			Locality:     "Monterrey",
			Boxes:        &boxes,
			Subtotal:     decimal.NewNullDecimal(decimal.NewFromInt(250)),
		},
		FinalStatus: order.Delivered,
		Notes:       "sin novedad",
		ArchivedAt:  archivedAt,
	}

	suite.Require().NoError(suite.repository.Add(ctx, entry))
	suite.Positive(entry.ID)

	loaded, err := suite.repository.Get(ctx, entry.ID)
	suite.Require().NoError(err)
	suite.Equal("OC-1", loaded.Identifier)
	suite.Equal(order.Delivered, loaded.FinalStatus)
	suite.Equal("Monterrey", loaded.Details.Locality)
	suite.Equal(3, *loaded.Details.Boxes)
	suite.Nil(loaded.Details.Bottles)
	suite.True(loaded.Details.Subtotal.Decimal.Equal(decimal.NewFromInt(250)))
	suite.True(archivedAt.Equal(loaded.ArchivedAt))
}

func (suite *ArchiveRepositoryIntegrationTestSuite) TestAdd_RequiresIdentifier() {
	err := suite.repository.Add(context.Background(), &archive.Entry{})

	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ArchiveRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	entry := &archive.Entry{Identifier: "OC-2", FinalStatus: order.Pending, ArchivedAt: time.Now()}
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	suite.Require().NoError(suite.repository.Delete(ctx, entry.ID))

	_, err := suite.repository.Get(ctx, entry.ID)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Delete(ctx, entry.ID), errs.ErrObjectNotFound)
}

func (suite *ArchiveRepositoryIntegrationTestSuite) TestIdentifiers_Distinct() {
	ctx := context.Background()
	for _, id := range []string{"OC-1", "OC-1", "OC-2"} {
		entry := &archive.Entry{Identifier: id, FinalStatus: order.Delivered, ArchivedAt: time.Now()}
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	ids, err := suite.repository.Identifiers(ctx)

	suite.Require().NoError(err)
	suite.Len(ids, 2)
	suite.Contains(ids, "OC-1")
	suite.Contains(ids, "OC-2")
}

func TestArchiveRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ArchiveRepositoryIntegrationTestSuite))
}
