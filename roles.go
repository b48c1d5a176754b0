package session

// UserRole is the principal's authorization role
type UserRole string

const (
	// RoleGuest is an unauthenticated visitor (i.e. view public catalog)
	RoleGuest UserRole = "GUEST"
	// RoleSalesperson records sales and reads the catalog
	RoleSalesperson UserRole = "SALES"
	// RoleAdmin manages products, discounts, stock, and users
	RoleAdmin UserRole = "ADMIN"
)

// RoleValidator defines the interface for role-based access control validation
type RoleValidator interface {
	// CanRead checks if the role can read the catalog and reports
	CanRead() bool

	// CanRecordSales checks if the role can register sales and stock movements
	CanRecordSales() bool

	// CanManageCatalog checks if the role can create and edit products,
	// pricing, and discounts
	CanManageCatalog() bool

	// CanManageUsers checks if the role can administer accounts
	CanManageUsers() bool

	// HasRole checks if the user has a specific role
	HasRole(role string) bool

	// IsAtLeast checks if the user's role is at least the minimum required role
	IsAtLeast(minRole UserRole) bool
}

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleGuest, RoleSalesperson, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRead checks if this role can read the catalog and reports
func (r UserRole) CanRead() bool {
	switch r {
	case RoleGuest, RoleSalesperson, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanRecordSales checks if this role can register sales and stock movements
func (r UserRole) CanRecordSales() bool {
	switch r {
	case RoleSalesperson, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageCatalog checks if this role can create and edit products and pricing
func (r UserRole) CanManageCatalog() bool {
	return r == RoleAdmin
}

// CanManageUsers checks if this role can administer accounts
func (r UserRole) CanManageUsers() bool {
	return r == RoleAdmin
}

// IsAtLeast checks if this role meets the minimum required level
func (r UserRole) IsAtLeast(minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleGuest:       0,
		RoleSalesperson: 1,
		RoleAdmin:       2,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleGuest,
		RoleSalesperson,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}
