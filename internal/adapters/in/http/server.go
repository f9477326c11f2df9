// Package http exposes the admin API over echo. Handlers translate between
// JSON DTOs and application commands/queries; all business rules live in the
// use case layer.
package http

import (
	"errors"
	"net/http"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/domain/model/product"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/errs"
	"shopadmin/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	authenticateHandler     commands.AuthenticateUserCommandHandler
	changeStatusHandler     commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	assignShipperHandler    commands.AssignShipperCommandHandler
	confirmCodHandler       commands.ConfirmCodPaymentCommandHandler
	createProductHandler    commands.CreateProductCommandHandler
	updateProductHandler    commands.UpdateProductCommandHandler
	adjustStockHandler      commands.AdjustStockCommandHandler
	setProductActiveHandler commands.SetProductActiveCommandHandler
	createUserHandler       commands.CreateUserCommandHandler
	changeUserRoleHandler   commands.ChangeUserRoleCommandHandler
	setUserBlockedHandler   commands.SetUserBlockedCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getProductsHandler    queries.GetProductsQueryHandler
	getUsersHandler       queries.GetUsersQueryHandler
	getActivityLogHandler queries.GetActivityLogQueryHandler
	getDashboardHandler   queries.GetDashboardSummaryQueryHandler
}

// ServerHandlers bundles the use case handlers the server depends on.
// Keeps the composition root readable with this many handlers.
type ServerHandlers struct {
	Authenticate     commands.AuthenticateUserCommandHandler
	ChangeStatus     commands.ChangeOrderStatusCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	AssignShipper    commands.AssignShipperCommandHandler
	ConfirmCod       commands.ConfirmCodPaymentCommandHandler
	CreateProduct    commands.CreateProductCommandHandler
	UpdateProduct    commands.UpdateProductCommandHandler
	AdjustStock      commands.AdjustStockCommandHandler
	SetProductActive commands.SetProductActiveCommandHandler
	CreateUser       commands.CreateUserCommandHandler
	ChangeUserRole   commands.ChangeUserRoleCommandHandler
	SetUserBlocked   commands.SetUserBlockedCommandHandler

	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetProducts    queries.GetProductsQueryHandler
	GetUsers       queries.GetUsersQueryHandler
	GetActivityLog queries.GetActivityLogQueryHandler
	GetDashboard   queries.GetDashboardSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(h ServerHandlers) *Server {
	return &Server{
		authenticateHandler:     h.Authenticate,
		changeStatusHandler:     h.ChangeStatus,
		cancelOrderHandler:      h.CancelOrder,
		assignShipperHandler:    h.AssignShipper,
		confirmCodHandler:       h.ConfirmCod,
		createProductHandler:    h.CreateProduct,
		updateProductHandler:    h.UpdateProduct,
		adjustStockHandler:      h.AdjustStock,
		setProductActiveHandler: h.SetProductActive,
		createUserHandler:       h.CreateUser,
		changeUserRoleHandler:   h.ChangeUserRole,
		setUserBlockedHandler:   h.SetUserBlocked,
		getOrdersHandler:        h.GetOrders,
		getOrderHandler:         h.GetOrder,
		getProductsHandler:      h.GetProducts,
		getUsersHandler:         h.GetUsers,
		getActivityLogHandler:   h.GetActivityLog,
		getDashboardHandler:     h.GetDashboard,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Every route except
// login requires a bearer token; user management and the activity log are
// admin only, order and product management is for admins and staff, and
// shippers only see orders and report deliveries.
func (s *Server) RegisterRoutes(e *echo.Echo, issuer *token.Issuer) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)

	authed := api.Group("", AuthMiddleware(issuer))

	staffOnly := RequireRoles(user.RoleAdmin, user.RoleStaff)
	adminOnly := RequireRoles(user.RoleAdmin)

	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/status", s.ChangeOrderStatus)
	authed.POST("/orders/:id/cancel", s.CancelOrder, staffOnly)
	authed.PUT("/orders/:id/shipper", s.AssignShipper, staffOnly)
	authed.DELETE("/orders/:id/shipper", s.UnassignShipper, staffOnly)
	authed.POST("/orders/:id/confirm-cod", s.ConfirmCodPayment, staffOnly)

	authed.GET("/products", s.GetProducts, staffOnly)
	authed.POST("/products", s.CreateProduct, staffOnly)
	authed.PUT("/products/:id", s.UpdateProduct, staffOnly)
	authed.POST("/products/:id/stock", s.AdjustStock, staffOnly)
	authed.PUT("/products/:id/active", s.SetProductActive, staffOnly)

	authed.GET("/users", s.GetUsers, adminOnly)
	authed.POST("/users", s.CreateUser, adminOnly)
	authed.PUT("/users/:id/role", s.ChangeUserRole, adminOnly)
	authed.PUT("/users/:id/blocked", s.SetUserBlocked, adminOnly)

	authed.GET("/activity", s.GetActivityLog, adminOnly)
	authed.GET("/dashboard", s.GetDashboardSummary, staffOnly)
}

// errorResponse maps use case and domain errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrConfirmationRequired):
		return ctx.JSON(http.StatusConflict, Error{
			Code:                 http.StatusConflict,
			Message:              err.Error(),
			RequiresConfirmation: true,
		})
	case errors.Is(err, commands.ErrTransitionRejected),
		errors.Is(err, commands.ErrEmailAlreadyTaken),
		errors.Is(err, commands.ErrCannotChangeOwnRole),
		errors.Is(err, commands.ErrCannotBlockSelf),
		errors.Is(err, commands.ErrNotAssignableShipper),
		errors.Is(err, order.ErrShipperChangeNotAllowed),
		errors.Is(err, order.ErrCodConfirmationNotAllowed),
		errors.Is(err, product.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrShipperNotPermitted),
		errors.Is(err, commands.ErrAccountBlocked),
		errors.Is(err, commands.ErrAdminPanelAccessDenied):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
