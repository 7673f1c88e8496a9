package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT custom claims for service tokens. Every caller
// acts on behalf of exactly one organization.
type Claims struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Service        string    `json:"service"`
	jwt.RegisteredClaims
}
