package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a portal token. The backend signs it;
// the client only reads it, so no field here is trusted beyond UI gating.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	UserRole string `json:"role,omitempty"`
}

// Verify interface compliance
var _ RoleValidator = (*Claims)(nil)

// Role returns the principal's authorization role
func (c *Claims) Role() string {
	return c.UserRole
}

// CanRead checks if the user can read the catalog and reports
func (c *Claims) CanRead() bool {
	return UserRole(c.UserRole).CanRead()
}

// CanRecordSales checks if the user can register sales and stock movements
func (c *Claims) CanRecordSales() bool {
	return UserRole(c.UserRole).CanRecordSales()
}

// CanManageCatalog checks if the user can create and edit products and pricing
func (c *Claims) CanManageCatalog() bool {
	return UserRole(c.UserRole).CanManageCatalog()
}

// CanManageUsers checks if the user can administer accounts
func (c *Claims) CanManageUsers() bool {
	return UserRole(c.UserRole).CanManageUsers()
}

// HasRole checks if the claims carry the given role
func (c *Claims) HasRole(role string) bool {
	return c.UserRole == role
}

// IsAtLeast checks if the claims role meets the minimum required role
func (c *Claims) IsAtLeast(minRole UserRole) bool {
	return UserRole(c.UserRole).IsAtLeast(minRole)
}

// Expires returns the expiration time, zero when the claim is absent
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time, zero when the claim is absent
func (c *Claims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
