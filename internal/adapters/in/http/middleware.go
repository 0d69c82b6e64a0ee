package http

import (
	"strings"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/auth"
	"fasttrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// TokenVerifier validates bearer tokens. Implemented by auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Principal is the authenticated caller, extracted from the bearer token.
type Principal struct {
	UserID kernel.UUID
	Role   account.Role
	Email  string
}

// IsAdmin reports whether the caller holds the admin role.
func (p Principal) IsAdmin() bool { return p.Role == account.RoleAdmin }

const principalContextKey = "principal"

// AuthMiddleware authenticates requests with a bearer token and stores the
// resulting Principal on the echo context.
func AuthMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return writeError(ctx, errs.NewUnauthorizedError("missing bearer token"))
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return writeError(ctx, err)
			}

			userID, err := claims.UserID()
			if err != nil {
				return writeError(ctx, errs.NewUnauthorizedErrorWithCause("invalid token subject", err))
			}

			role, err := account.ParseRole(claims.Role)
			if err != nil {
				return writeError(ctx, errs.NewUnauthorizedErrorWithCause("invalid token role", err))
			}

			ctx.Set(principalContextKey, Principal{
				UserID: userID,
				Role:   role,
				Email:  claims.Email,
			})

			return next(ctx)
		}
	}
}

// RequireAdmin rejects non-admin callers. Must run after AuthMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p, err := currentPrincipal(ctx)
			if err != nil {
				return writeError(ctx, err)
			}
			if !p.IsAdmin() {
				return writeError(ctx, errs.NewForbiddenError("admin role required"))
			}

			return next(ctx)
		}
	}
}

func currentPrincipal(ctx echo.Context) (Principal, error) {
	p, ok := ctx.Get(principalContextKey).(Principal)
	if !ok {
		return Principal{}, errs.NewUnauthorizedError("missing bearer token")
	}
	return p, nil
}
