package restaurantrepo_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// RestaurantRepositoryIntegrationTestSuite verifies restaurant and dish
// persistence against a real PostgreSQL instance.
type RestaurantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *restaurantrepo.GormRestaurantRepository
	dishes     *restaurantrepo.GormDishRepository
	tracker    *MockAggregateTracker
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&restaurantrepo.RestaurantDTO{}, &restaurantrepo.DishDTO{}))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dishes, restaurants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = restaurantrepo.NewGormRestaurantRepository(suite.db, suite.tracker)
	suite.dishes = restaurantrepo.NewGormDishRepository(suite.db)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	rest, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Seoul Kitchen")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", rest.ID(), rest).Once()

	suite.Require().NoError(suite.repository.Add(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.True(rest.OwnerID().IsEqual(loaded.OwnerID()))
	suite.Equal("Seoul Kitchen", loaded.Name())
	suite.False(loaded.IsPromoted())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestGetPromotedExpired() {
	ctx := context.Background()
	now := time.Now().UTC()

	expiredAt := now.Add(-time.Hour)
	activeUntil := now.Add(time.Hour)

	expired, err := restaurant.RestoreRestaurant(kernel.NewUUID(), kernel.NewUUID(),
		"Expired Kitchen", true, &expiredAt)
	suite.Require().NoError(err)
	active, err := restaurant.RestoreRestaurant(kernel.NewUUID(), kernel.NewUUID(),
		"Active Kitchen", true, &activeUntil)
	suite.Require().NoError(err)
	unpromoted, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Plain Kitchen")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, rest := range []*restaurant.Restaurant{expired, active, unpromoted} {
		suite.Require().NoError(suite.repository.Add(ctx, rest))
	}

	found, err := suite.repository.GetPromotedExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(expired.ID().IsEqual(found[0].ID()))
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestUpdate_PersistsDemotion() {
	ctx := context.Background()
	until := time.Now().UTC().Add(-time.Minute)

	rest, err := restaurant.RestoreRestaurant(kernel.NewUUID(), kernel.NewUUID(),
		"Promoted Kitchen", true, &until)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", rest.ID(), rest).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, rest))

	rest.Demote()
	suite.Require().NoError(suite.repository.Update(ctx, rest))

	loaded, err := suite.repository.Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsPromoted())
	suite.Nil(loaded.PromotedUntil())
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDishes_RoundTrip() {
	ctx := context.Background()
	extra := int64(200)

	dish, err := restaurant.NewDish(kernel.NewUUID(), kernel.NewUUID(), "Bibimbap", 1100,
		[]restaurant.DishOption{
			{Name: "Spicy", Extra: &extra},
			{Name: "Size", Choices: []restaurant.DishChoice{{Name: "L", Extra: &extra}}},
		})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.dishes.Add(ctx, dish))

	loaded, err := suite.dishes.Get(ctx, dish.ID())
	suite.Require().NoError(err)
	suite.Equal("Bibimbap", loaded.Name())
	suite.Equal(int64(1100), loaded.Price())
	suite.Require().Len(loaded.Options(), 2)

	opt, ok := loaded.FindOption("Spicy")
	suite.True(ok)
	suite.Require().NotNil(opt.Extra)
	suite.Equal(int64(200), *opt.Extra)
}

func (suite *RestaurantRepositoryIntegrationTestSuite) TestDishes_NotFound() {
	_, err := suite.dishes.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRestaurantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantRepositoryIntegrationTestSuite))
}
