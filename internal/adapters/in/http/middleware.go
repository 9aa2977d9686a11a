package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/pkg/auth"
	"constructmart/internal/pkg/errs"
)

// principalContextKey is the echo context key the auth middleware stores the
// verified principal under.
const principalContextKey = "auth.principal"

// publicPrefixes lists route prefixes that never require a bearer token.
// Everything else behind the middleware does.
var publicPrefixes = []string{
	"/api/v1/auth/",
	"/health",
	"/openapi.json",
	"/swagger",
}

// publicReadRoutes lists GET-only routes open to anonymous callers: browsing
// the catalog and previewing prices must work before sign-up.
var publicReadRoutes = map[string]bool{
	"GET /api/v1/products":                    true,
	"GET /api/v1/settings":                    true,
	"POST /api/v1/settings/calculate-pricing": true,
}

// AuthMiddleware verifies the Authorization bearer token and stores the
// resulting principal on the context. Requests to public routes pass through
// untouched.
func AuthMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if isPublic(ctx) {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return respondError(ctx, errs.NewUnauthorizedError("missing bearer token"))
			}

			principal, err := tokens.Verify(token)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func isPublic(ctx echo.Context) bool {
	path := ctx.Request().URL.Path
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return publicReadRoutes[ctx.Request().Method+" "+path]
}

// principalFrom returns the verified principal stored by the middleware.
func principalFrom(ctx echo.Context) (auth.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	if !ok {
		return auth.Principal{}, errs.NewUnauthorizedError("no authenticated principal")
	}
	return principal, nil
}

// requireRole returns the principal if it holds one of the allowed roles.
func requireRole(ctx echo.Context, allowed ...user.Role) (auth.Principal, error) {
	principal, err := principalFrom(ctx)
	if err != nil {
		return auth.Principal{}, err
	}
	for _, role := range allowed {
		if principal.Role == role {
			return principal, nil
		}
	}
	return auth.Principal{}, errs.NewUnauthorizedError("role is not allowed to perform this operation")
}
