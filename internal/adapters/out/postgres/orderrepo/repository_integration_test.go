package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dinebot/internal/adapters/out/postgres/orderrepo"
	"dinebot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies the persistence gateway
// against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.MenuItemDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderTrackingDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items, order_items, order_tracking").Error)

	suite.Require().NoError(suite.db.Create(&[]orderrepo.MenuItemDTO{
		{Name: "pizza", Price: 5.5},
		{Name: "mango lassi", Price: 2},
	}).Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderID_EmptyDatabase() {
	id, err := suite.repository.NextOrderID(context.Background())

	suite.Require().NoError(err)
	suite.Equal(int64(1), id)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderID_AfterExistingOrders() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.AddItem(ctx, 7, "pizza", 1))

	id, err := suite.repository.NextOrderID(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(8), id)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddItem_KnownMenuItem() {
	ctx := context.Background()

	err := suite.repository.AddItem(ctx, 1, "pizza", 2)

	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderItemDTO{}).Where("order_id = ?", 1).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddItem_UnknownMenuItem() {
	err := suite.repository.AddItem(context.Background(), 1, "sushi", 2)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTotalPrice() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.AddItem(ctx, 1, "pizza", 2))
	suite.Require().NoError(suite.repository.AddItem(ctx, 1, "mango lassi", 1))

	total, err := suite.repository.TotalPrice(ctx, 1)

	suite.Require().NoError(err)
	suite.InDelta(13.0, total, 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTotalPrice_NoItems() {
	total, err := suite.repository.TotalPrice(context.Background(), 999)

	suite.Require().NoError(err)
	suite.InDelta(0.0, total, 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStatus() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.AddTracking(ctx, 1, "in progress"))

	status, err := suite.repository.Status(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal("in progress", status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestStatus_UnknownOrder() {
	_, err := suite.repository.Status(context.Background(), 999)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
