package http

import (
	"net/http"
	"strings"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"
)

// AuthMiddleware verifies the bearer token on every admin route and stores
// the actor's ID and role in the request context. Customer tokens are
// rejected outright; finer role checks happen per route.
func AuthMiddleware(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := issuer.Parse(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token subject",
				})
			}

			role := user.Role(claims.Role)
			if !role.CanAccessAdminPanel() {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Admin panel access denied",
				})
			}

			ctx.Set(actorIDKey, actorID)
			ctx.Set(actorRoleKey, role)
			return next(ctx)
		}
	}
}

// RequireRoles restricts a route to the given roles.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actorRole := roleFrom(ctx)
			for _, role := range roles {
				if actorRole == role {
					return next(ctx)
				}
			}
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Insufficient role",
			})
		}
	}
}

func actorFrom(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(actorIDKey).(kernel.UUID)
	return id
}

func roleFrom(ctx echo.Context) user.Role {
	role, _ := ctx.Get(actorRoleKey).(user.Role)
	return role
}
