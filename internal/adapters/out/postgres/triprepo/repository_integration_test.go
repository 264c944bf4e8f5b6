package triprepo_test

import (
	"context"
	"testing"
	"time"

	"kandypack/internal/adapters/out/postgres/triprepo"
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/trip"
	"kandypack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// TripRepositoryIntegrationTestSuite provides integration tests for TripRepository
// using PostgreSQL containers to verify capacity ledger persistence.
type TripRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *triprepo.GormTripRepository
	tracker    *MockAggregateTracker
}

func (suite *TripRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&triprepo.TripDTO{}))
}

func (suite *TripRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trips").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = triprepo.NewGormTripRepository(suite.db, suite.tracker)
}

func (suite *TripRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TripRepositoryIntegrationTestSuite) TestAdd_SynthesizedTrip_Success() {
	ctx := context.Background()

	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	testTrip := suite.createTestTrip(depart, 40, 3)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Once()

	err := suite.repository.Add(ctx, testTrip)
	suite.Require().NoError(err)

	suite.assertTripCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestGet_ExistingTrip_RoundTripsLedger() {
	ctx := context.Background()

	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	originalTrip := suite.createTestTrip(depart, 100, 37.5)

	suite.tracker.On("TrackAggregate", originalTrip.ID(), originalTrip).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalTrip))

	retrievedTrip, err := suite.repository.Get(ctx, originalTrip.ID())
	suite.Require().NoError(err)

	suite.Equal(originalTrip.ID(), retrievedTrip.ID())
	suite.Equal(originalTrip.TrainID(), retrievedTrip.TrainID())
	suite.Equal(originalTrip.RouteID(), retrievedTrip.RouteID())
	suite.Equal(originalTrip.StoreID(), retrievedTrip.StoreID())
	suite.True(depart.Equal(retrievedTrip.DepartTime()))
	suite.True(depart.Add(trip.DefaultDuration).Equal(retrievedTrip.ArriveTime()))
	suite.InDelta(100, retrievedTrip.Capacity().Units(), kernel.SpaceEpsilon)
	suite.InDelta(37.5, retrievedTrip.CapacityUsed().Units(), kernel.SpaceEpsilon)
	suite.InDelta(62.5, retrievedTrip.Remaining().Units(), kernel.SpaceEpsilon)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestGet_NonExistentTrip_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedTrip, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedTrip)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdate_ReservationPersistsLedger() {
	ctx := context.Background()

	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	testTrip := suite.createTestTrip(depart, 10, 2)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	amount, err := kernel.NewSpace(3)
	suite.Require().NoError(err)
	remaining, err := testTrip.Reserve(amount)
	suite.Require().NoError(err)
	suite.InDelta(5, remaining.Units(), kernel.SpaceEpsilon)

	suite.Require().NoError(suite.repository.Update(ctx, testTrip))

	retrievedTrip, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.InDelta(5, retrievedTrip.CapacityUsed().Units(), kernel.SpaceEpsilon)
	suite.InDelta(5, retrievedTrip.Remaining().Units(), kernel.SpaceEpsilon)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdate_NonExistentTrip_ReturnsError() {
	ctx := context.Background()

	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	nonExistentTrip := suite.createTestTrip(depart, 10, 0)

	err := suite.repository.Update(ctx, nonExistentTrip)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetForUpdate_LockedRowBlocksSecondReader() {
	ctx := context.Background()

	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	testTrip := suite.createTestTrip(depart, 10, 0)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	// First transaction locks the row.
	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	repo1 := triprepo.NewGormTripRepository(tx1, suite.tracker)

	lockedTrip, err := repo1.GetForUpdate(ctx, testTrip.ID())
	suite.Require().NoError(err)

	// Second transaction attempts the same lock and must wait until the
	// first commits. Reserve through the first, then verify the second
	// observes the committed ledger.
	amount, err := kernel.NewSpace(4)
	suite.Require().NoError(err)
	_, err = lockedTrip.Reserve(amount)
	suite.Require().NoError(err)
	suite.Require().NoError(repo1.Update(ctx, lockedTrip))

	secondSaw := make(chan float64, 1)
	go func() {
		tx2 := suite.db.Begin()
		defer tx2.Rollback()
		repo2 := triprepo.NewGormTripRepository(tx2, suite.tracker)

		observed, lockErr := repo2.GetForUpdate(ctx, testTrip.ID())
		if lockErr != nil {
			secondSaw <- -1
			return
		}
		secondSaw <- observed.CapacityUsed().Units()
	}()

	// Give the second transaction time to queue behind the lock.
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(tx1.Commit().Error)

	select {
	case used := <-secondSaw:
		suite.InDelta(4, used, kernel.SpaceEpsilon)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction never acquired the lock")
	}
}

// createTestTrip builds a trip with the given rated capacity and initial load.
func (suite *TripRepositoryIntegrationTestSuite) createTestTrip(
	departTime time.Time, capacity float64, used float64,
) *trip.Trip {
	capacitySpace, err := kernel.NewSpace(capacity)
	suite.Require().NoError(err)
	usedSpace, err := kernel.NewSpace(used)
	suite.Require().NoError(err)

	restored, err := trip.RestoreTrip(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		departTime, departTime.Add(trip.DefaultDuration),
		capacitySpace, usedSpace,
	)
	suite.Require().NoError(err)
	return restored
}

// assertTripCount verifies the number of trips in the database.
func (suite *TripRepositoryIntegrationTestSuite) assertTripCount(expected int) {
	var count int64
	err := suite.db.Model(&triprepo.TripDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestTripRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TripRepositoryIntegrationTestSuite))
}
