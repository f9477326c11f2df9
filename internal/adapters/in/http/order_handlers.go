package http

import (
	"net/http"
	"strconv"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - the paginated admin order list.
// Accepts ?status=, ?limit= and ?offset= query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if name := ctx.QueryParam("status"); name != "" {
		status, err := order.StatusFromName(name)
		if err != nil {
			return badRequest(ctx, "Unknown status: "+name)
		}
		statusFilter = &status
	}

	limit, offset := pagination(ctx)

	query, err := queries.NewGetOrdersQuery(statusFilter, limit, offset)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderListItem, len(rows))
	for i, row := range rows {
		response[i] = OrderListItem{
			ID:                row.ID.String(),
			CustomerName:      row.CustomerName,
			Status:            row.Status,
			StatusDisplayName: row.StatusDisplayName,
			PaymentMethod:     row.PaymentMethod,
			PaymentStatus:     row.PaymentStatus,
			TotalCents:        row.TotalCents,
			ShipperID:         uuidString(row.ShipperID),
			CreatedAt:         row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - the order detail view with the
// allowed next statuses and the COD confirmation flag.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		ID:                 detail.ID.String(),
		CustomerName:       detail.CustomerName,
		Status:             detail.Status,
		StatusDisplayName:  detail.StatusDisplayName,
		NextStatuses:       detail.NextStatuses,
		PaymentMethod:      detail.PaymentMethod,
		PaymentStatus:      detail.PaymentStatus,
		CanConfirmCod:      detail.CanConfirmCod,
		ShipperID:          uuidString(detail.ShipperID),
		CancellationReason: detail.CancellationReason,
		TotalCents:         detail.TotalCents,
		Items:              items,
		CreatedAt:          detail.CreatedAt,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status. A transition
// carrying a warning is rejected with 409 and requires_confirmation until
// the caller retries with "confirmed": true.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromName(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	command, err := commands.NewChangeOrderStatusCommand(
		orderID, target, actorFrom(ctx), roleFrom(ctx), request.Confirmed)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancellation with a
// mandatory reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewCancelOrderCommand(
		orderID, request.Reason, actorFrom(ctx), request.Confirmed)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignShipper handles PUT /api/v1/orders/:id/shipper.
func (s *Server) AssignShipper(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request AssignShipperRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperID, err := kernel.UUIDFromString(request.ShipperID)
	if err != nil {
		return badRequest(ctx, "Invalid shipper ID")
	}

	command, err := commands.NewAssignShipperCommand(orderID, shipperID, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignShipperHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignShipper handles DELETE /api/v1/orders/:id/shipper.
func (s *Server) UnassignShipper(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewUnassignShipperCommand(orderID, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignShipperHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCodPayment handles POST /api/v1/orders/:id/confirm-cod.
func (s *Server) ConfirmCodPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	command, err := commands.NewConfirmCodPaymentCommand(orderID, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.confirmCodHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pagination(ctx echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(ctx.QueryParam("limit"))
	offset, _ = strconv.Atoi(ctx.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
