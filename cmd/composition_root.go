package cmd

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterhttp "shopadmin/internal/adapters/in/http"
	"shopadmin/internal/adapters/out/postgres"
	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/ports"
	"shopadmin/internal/jobs"
	"shopadmin/internal/pkg/token"

	"github.com/redis/go-redis/v9"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// the same gorm connection and unit of work factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	redis      *redis.Client
	publisher  ports.EventPublisher
	issuer     *token.Issuer
	logger     *zap.Logger
}

// NewCompositionRoot creates the composition root from the opened adapters.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		redis:      redisClient,
		publisher:  publisher,
		issuer:     token.NewIssuer(config.JWTSecret, config.JWTTTL),
		logger:     logger,
	}
}

// TokenIssuer returns the JWT issuer shared by the login handler and the
// auth middleware.
func (c *CompositionRoot) TokenIssuer() *token.Issuer {
	return c.issuer
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignShipperCommandHandler() commands.AssignShipperCommandHandler {
	return commands.NewAssignShipperCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateConfirmCodPaymentCommandHandler() commands.ConfirmCodPaymentCommandHandler {
	return commands.NewConfirmCodPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateSetProductActiveCommandHandler() commands.SetProductActiveCommandHandler {
	return commands.NewSetProductActiveCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateSetUserBlockedCommandHandler() commands.SetUserBlockedCommandHandler {
	return commands.NewSetUserBlockedCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoWFactory(), c.issuer)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivityLogQueryHandler() queries.GetActivityLogQueryHandler {
	return queries.NewGetActivityLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB, c.redis, c.logger)
}

// CreateServerHandlers bundles every handler the HTTP server needs.
func (c *CompositionRoot) CreateServerHandlers() adapterhttp.ServerHandlers {
	return adapterhttp.ServerHandlers{
		Authenticate:     c.CreateAuthenticateUserCommandHandler(),
		ChangeStatus:     c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		AssignShipper:    c.CreateAssignShipperCommandHandler(),
		ConfirmCod:       c.CreateConfirmCodPaymentCommandHandler(),
		CreateProduct:    c.CreateCreateProductCommandHandler(),
		UpdateProduct:    c.CreateUpdateProductCommandHandler(),
		AdjustStock:      c.CreateAdjustStockCommandHandler(),
		SetProductActive: c.CreateSetProductActiveCommandHandler(),
		CreateUser:       c.CreateCreateUserCommandHandler(),
		ChangeUserRole:   c.CreateChangeUserRoleCommandHandler(),
		SetUserBlocked:   c.CreateSetUserBlockedCommandHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetProducts:      c.CreateGetProductsQueryHandler(),
		GetUsers:         c.CreateGetUsersQueryHandler(),
		GetActivityLog:   c.CreateGetActivityLogQueryHandler(),
		GetDashboard:     c.CreateGetDashboardSummaryQueryHandler(),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(
	systemActorID kernel.UUID,
	maxPendingAge time.Duration,
	activityRetentionDays int,
) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.fullUoWFactory(),
		c.CreateCancelOrderCommandHandler(),
		systemActorID,
		maxPendingAge,
		activityRetentionDays,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
