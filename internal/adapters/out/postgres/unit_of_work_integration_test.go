package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/arearepo"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then migrates the schema for all four aggregates.
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&arearepo.AreaDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&partnerrepo.PartnerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, partners, areas, assignments").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PartnerRepository())
	suite.NotNil(uow2.AreaRepository())
	suite.NotNil(uow2.AssignmentRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()

	testArea := suite.mustCreateArea("Downtown")
	testPartner := suite.mustCreatePartner("jane@example.com", testArea.ID())
	testOrder := suite.mustCreateOrder("ORD-100", testArea.ID(), "10:30")

	// simulate one dispatch effect in a single transaction
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testPartner.IncrementLoad())
	suite.Require().NoError(testOrder.Assign(testPartner.ID()))

	record, err := assignment.NewSuccess(kernel.NewUUID(), testOrder.ID(), testPartner.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Update(ctx, testPartner))
	suite.Require().NoError(uow.AssignmentRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	// verify through a fresh unit of work
	check := suite.factory.Create()

	storedOrder, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, storedOrder.Status())
	suite.Require().NotNil(storedOrder.Partner())
	suite.True(storedOrder.Partner().IsEqual(testPartner.ID()))
	suite.Equal("Test Customer", storedOrder.Customer().Name())
	suite.Require().Len(storedOrder.Items(), 1, "order lines should survive the round trip")
	suite.Equal("Margherita", storedOrder.Items()[0].Name())
	suite.Equal(2, storedOrder.Items()[0].Quantity())

	storedPartner, err := check.PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(1, storedPartner.CurrentLoad())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	testArea := suite.mustCreateArea("Uptown")
	testOrder := suite.mustCreateOrder("ORD-200", testArea.ID(), "09:15")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	another, err := order.NewOrder(
		kernel.NewUUID(), "ORD-201", suite.mustCustomer(), testArea.ID(),
		testOrder.ScheduledFor(), 75, suite.mustItems(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, another))

	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, another.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_GetAllInPendingStatus() {
	ctx := context.Background()

	testArea := suite.mustCreateArea("Midtown")
	first := suite.mustCreateOrder("ORD-300", testArea.ID(), "08:00")
	second := suite.mustCreateOrder("ORD-301", testArea.ID(), "12:00")

	// an assigned order must not appear in the pending set
	testPartner := suite.mustCreatePartner("mark@example.com", testArea.ID())
	assigned := suite.mustCreateOrder("ORD-302", testArea.ID(), "13:00")
	suite.Require().NoError(assigned.Assign(testPartner.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, assigned))
	suite.Require().NoError(uow.Commit(ctx))

	pending, err := suite.factory.Create().OrderRepository().GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID().IsEqual(first.ID()), "oldest order should come first")
	suite.True(pending[1].ID().IsEqual(second.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPartnerRepository_GetAllActiveWithCapacity() {
	ctx := context.Background()

	testArea := suite.mustCreateArea("Harbor")
	available := suite.mustCreatePartner("amy@example.com", testArea.ID())

	inactive := suite.mustCreatePartner("bob@example.com", testArea.ID())
	inactive.Deactivate()

	full := suite.mustCreatePartner("carl@example.com", testArea.ID())
	for range partner.MaxLoad {
		suite.Require().NoError(full.IncrementLoad())
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PartnerRepository().Update(ctx, inactive))
	suite.Require().NoError(uow.PartnerRepository().Update(ctx, full))
	suite.Require().NoError(uow.Commit(ctx))

	eligible, err := suite.factory.Create().PartnerRepository().GetAllActiveWithCapacity(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)
	suite.True(eligible[0].ID().IsEqual(available.ID()))
	suite.Require().NotNil(eligible[0].Shift(), "shift should survive the round trip")
	suite.Equal("08:00-17:00", eligible[0].Shift().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPartnerRepository_GetByEmail() {
	ctx := context.Background()

	testArea := suite.mustCreateArea("Westside")
	created := suite.mustCreatePartner("dora@example.com", testArea.ID())

	found, err := suite.factory.Create().PartnerRepository().GetByEmail(ctx, "dora@example.com")
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(created.ID()))

	_, err = suite.factory.Create().PartnerRepository().GetByEmail(ctx, "nobody@example.com")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) mustCreateArea(name string) *area.Area {
	ctx := context.Background()

	a, err := area.NewArea(kernel.NewUUID(), name)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AreaRepository().Add(ctx, a))
	suite.Require().NoError(uow.Commit(ctx))
	return a
}

func (suite *UnitOfWorkIntegrationTestSuite) mustCreatePartner(email string, areaID kernel.UUID) *partner.Partner {
	ctx := context.Background()

	p, err := partner.NewPartner(kernel.NewUUID(), "Test Partner", email, "+10000000000",
		[]kernel.UUID{areaID})
	suite.Require().NoError(err)

	start, err := kernel.ParseTimeOfDay("08:00")
	suite.Require().NoError(err)
	end, err := kernel.ParseTimeOfDay("17:00")
	suite.Require().NoError(err)
	shift, err := partner.NewShift(start, end)
	suite.Require().NoError(err)
	suite.Require().NoError(p.SetShift(shift))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) mustCreateOrder(number string, areaID kernel.UUID, at string) *order.Order {
	ctx := context.Background()

	scheduled, err := kernel.ParseTimeOfDay(at)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, suite.mustCustomer(), areaID, scheduled, 100, suite.mustItems(),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) mustCustomer() order.Customer {
	customer, err := order.NewCustomer("Test Customer", "+15550100")
	suite.Require().NoError(err)
	return customer
}

func (suite *UnitOfWorkIntegrationTestSuite) mustItems() []order.Item {
	item, err := order.NewItem("Margherita", 2, 50)
	suite.Require().NoError(err)
	return []order.Item{item}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
