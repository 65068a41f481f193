package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/migrations"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// recordingPublisher keeps every published order and can be told to fail.
type recordingPublisher struct {
	mu        sync.Mutex
	published []*order.Order
	err       error
}

func (p *recordingPublisher) PublishOrderChanged(_ context.Context, orders ...*order.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, orders...)
	return nil
}

func (p *recordingPublisher) Published() []*order.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*order.Order(nil), p.published...)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real
// PostgreSQL database migrated with the embedded schema.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

// SetupTest empties the tables and gives every test its own publisher.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.publisher = &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIndependentInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndPublishes() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder("acc-1")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("acc-1", stored.AccountID())

	published := suite.publisher.Published()
	suite.Require().Len(published, 1)
	suite.Equal(o.ID(), published[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesEverySavedAggregate() {
	ctx := context.Background()
	uow := suite.factory.Create()
	first := suite.newOrder("acc-1")
	second := suite.newOrder("acc-2")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(first.Cancel(createdAt.Add(time.Minute)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Len(suite.publisher.Published(), 3)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChangesAndDoesNotPublish() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("acc-1")))
	suite.Require().NoError(uow.Rollback(ctx))

	orders, err := suite.factory.Create().OrderRepository().GetByAccount(ctx, "acc-1", nil)
	suite.Require().NoError(err)
	suite.Empty(orders)
	suite.Empty(suite.publisher.Published())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder("acc-1")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollback_WithoutBegin_ReturnInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_KeepsOneTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("acc-1")))
	suite.Require().NoError(uow.Rollback(ctx))

	orders, err := suite.factory.Create().OrderRepository().GetByAccount(ctx, "acc-1", nil)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	suite.publisher.err = errors.New("broker unavailable")
	uow := suite.factory.Create()
	o := suite.newOrder("acc-1")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepository_WithoutTransaction_ReadsCommittedData() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	_, err := repo.Get(ctx, 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	o := suite.newOrder("acc-1")
	suite.Require().NoError(repo.Add(ctx, o))

	stored, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), stored.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregates_ClearedAfterCommit() {
	ctx := context.Background()
	uow := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("acc-1")))
	suite.Len(uow.GetTrackedAggregates(), 1)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(uow.GetTrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(accountID string) *order.Order {
	price, err := kernel.MoneyFromString("12.50")
	suite.Require().NoError(err)
	item, err := order.NewItem("prod-1", 2, price)
	suite.Require().NoError(err)
	o, err := order.NewOrder(accountID, []order.Item{item}, "1 Main St", nil, createdAt)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
