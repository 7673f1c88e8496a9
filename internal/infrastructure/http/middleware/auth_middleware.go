package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealinsight-dev/deal-insight/pkg/jwt"
)

const (
	// OrganizationIDKey is the echo context key for the caller's organization
	OrganizationIDKey = "organization_id"
	// ServiceNameKey is the echo context key for the calling service
	ServiceNameKey = "service_name"
)

// ServiceAuth returns an Echo middleware that validates organization-scoped
// service tokens and sets "organization_id" (uuid.UUID) and "service_name"
// (string) into the Echo context
func ServiceAuth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := jwtManager.ValidateServiceToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(OrganizationIDKey, claims.OrganizationID)
			c.Set(ServiceNameKey, claims.Service)

			return next(c)
		}
	}
}

// GetOrganizationID retrieves the authenticated organization from the
// Echo context
func GetOrganizationID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(OrganizationIDKey).(uuid.UUID)
	return id, ok
}

// GetServiceName retrieves the calling service name from the Echo context
func GetServiceName(c echo.Context) (string, bool) {
	name, ok := c.Get(ServiceNameKey).(string)
	return name, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
