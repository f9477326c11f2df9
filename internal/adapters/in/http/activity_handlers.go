package http

import (
	"net/http"

	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetActivityLog handles GET /api/v1/activity - the paginated audit trail
// with optional ?actor_id= and ?action= filters.
func (s *Server) GetActivityLog(ctx echo.Context) error {
	var actorFilter *kernel.UUID
	if raw := ctx.QueryParam("actor_id"); raw != "" {
		actorID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid actor ID")
		}
		actorFilter = &actorID
	}

	limit, offset := pagination(ctx)

	query, err := queries.NewGetActivityLogQuery(
		actorFilter, ctx.QueryParam("action"), limit, offset)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getActivityLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActivityEntry, len(rows))
	for i, row := range rows {
		response[i] = ActivityEntry{
			ID:         row.ID.String(),
			ActorID:    row.ActorID.String(),
			ActorName:  row.ActorName,
			Action:     row.Action,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Detail:     row.Detail,
			CreatedAt:  row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardSummary handles GET /api/v1/dashboard.
func (s *Server) GetDashboardSummary(ctx echo.Context) error {
	query := queries.NewGetDashboardSummaryQuery()

	summary, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}
