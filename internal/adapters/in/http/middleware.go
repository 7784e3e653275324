package http

import (
	"net/http"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Headers carrying the authenticated caller's identity. An upstream gateway
// is expected to have verified the credentials; this service only resolves
// them into a principal.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the identity headers into a Principal and
// stores it on the request context. Requests without both headers are
// rejected with 401, requests with malformed values with 400.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get(HeaderUserID)
			rawRole := ctx.Request().Header.Get(HeaderUserRole)
			if rawID == "" || rawRole == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing " + HeaderUserID + " or " + HeaderUserRole + " header",
				})
			}

			id, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderUserID + " header: " + err.Error(),
				})
			}

			role, err := principal.RoleFromString(rawRole)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderUserRole + " header: " + err.Error(),
				})
			}

			p, err := principal.NewPrincipal(id, role)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid principal: " + err.Error(),
				})
			}

			ctx.Set(principalContextKey, p)
			return next(ctx)
		}
	}
}

// principalFrom returns the principal resolved by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (principal.Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(principal.Principal)
	return p, ok
}

func unauthenticatedResponse(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Request is not authenticated",
	})
}
