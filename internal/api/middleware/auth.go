package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/api/metrics"
	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

// Context keys under which the verified principal is stored.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// Auth verifies the bearer token on every protected request and injects the
// principal into the echo context. A missing credential is 401; a credential
// that fails verification is 403.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(CtxUserID, principal.UserID)
			c.Set(CtxEmail, principal.Email)

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
