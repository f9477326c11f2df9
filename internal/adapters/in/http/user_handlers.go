package http

import (
	"net/http"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login - the only unauthenticated route.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewAuthenticateUserCommand(request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.authenticateHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Name:   result.Name,
		Role:   string(result.Role),
	})
}

// GetUsers handles GET /api/v1/users - the admin user list with an optional
// ?role= filter.
func (s *Server) GetUsers(ctx echo.Context) error {
	var roleFilter *user.Role
	if name := ctx.QueryParam("role"); name != "" {
		role := user.Role(name)
		if err := role.Validate(); err != nil {
			return badRequest(ctx, "Unknown role: "+name)
		}
		roleFilter = &role
	}

	limit, offset := pagination(ctx)

	query, err := queries.NewGetUsersQuery(roleFilter, limit, offset)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UserListItem, len(rows))
	for i, row := range rows {
		response[i] = UserListItem{
			ID:      row.ID.String(),
			Email:   row.Email,
			Name:    row.Name,
			Role:    row.Role,
			Blocked: row.Blocked,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role := user.Role(request.Role)
	if err := role.Validate(); err != nil {
		return badRequest(ctx, "Unknown role: "+request.Role)
	}

	command, err := commands.NewCreateUserCommand(
		request.Email, request.Name, request.Password, role, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := s.createUserHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// ChangeUserRole handles PUT /api/v1/users/:id/role.
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var request ChangeUserRoleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role := user.Role(request.Role)
	if err = role.Validate(); err != nil {
		return badRequest(ctx, "Unknown role: "+request.Role)
	}

	command, err := commands.NewChangeUserRoleCommand(userID, role, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeUserRoleHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetUserBlocked handles PUT /api/v1/users/:id/blocked.
func (s *Server) SetUserBlocked(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var request SetUserBlockedRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewSetUserBlockedCommand(userID, request.Blocked, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setUserBlockedHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
