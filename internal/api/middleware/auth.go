package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/backoffice/user-management-api/internal/api/metrics"
)

// TokenDenylist reports whether a token has been revoked. Revocations are
// written by the external credential system; this side only reads.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer JWT and injects the caller identity into context.
// The token is issued and revoked by the external credential system; here it
// is only verified. Every failure is a 401, distinct from the 403 the RBAC
// middleware produces for a wrong role.
//
// A failed revocation lookup does not reject the request: availability wins
// over a strict check when the revocation store is down. The failure is
// logged and counted so the outage is visible.
func Auth(jwtSecret string, denylist TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unauthorized(c, "invalid token")
			}

			if denylist != nil {
				if jti, _ := claims["jti"].(string); jti != "" {
					revoked, err := denylist.IsRevoked(c.Request().Context(), jti)
					switch {
					case err != nil:
						metrics.DenylistCheckErrorsTotal.Inc()
						log.Error().Err(err).Str("jti", jti).Msg("token revocation check failed")
					case revoked:
						return unauthorized(c, "token revoked")
					}
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
