// Package identity contains the minimal user model the marketplace
// invariants depend on: roles for shop ownership and the manager flag
// for organization management.
package identity

import (
	"net/mail"
	"strings"

	"github.com/localmarket/backend/internal/domain/shared"
)

// UserRole determines what a user may own and do
type UserRole string

const (
	// RoleCustomer browses shops and rates them
	RoleCustomer UserRole = "customer"
	// RoleSeller may own shops
	RoleSeller UserRole = "seller"
	// RoleAdmin verifies taxonomies, categories, and shops
	RoleAdmin UserRole = "admin"
)

// User is an account on the platform. IsManager mirrors whether the
// user currently manages at least one organization.
type User struct {
	shared.BaseAggregateRoot
	Name      string   `gorm:"type:varchar(100);not null"`
	Email     string   `gorm:"type:varchar(150);not null;uniqueIndex"`
	Role      UserRole `gorm:"type:varchar(20);not null;default:'customer';index"`
	IsManager bool     `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account
func NewUser(name, email string, role UserRole) (*User, *shared.DomainError) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid email address")
	}
	if !isValidRole(role) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid user role")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Role:              role,
	}, nil
}

// Update changes the user's name and role
func (u *User) Update(name string, role UserRole) *shared.DomainError {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if !isValidRole(role) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid user role")
	}

	u.Name = name
	u.Role = role
	u.IncrementVersion()
	return nil
}

// CanOwnShop reports whether the user may be a shop owner
func (u *User) CanOwnShop() bool {
	return u.Role == RoleSeller || u.Role == RoleAdmin
}

// MarkManager raises the manager flag
func (u *User) MarkManager() {
	if !u.IsManager {
		u.IsManager = true
		u.IncrementVersion()
	}
}

// UnmarkManager lowers the manager flag
func (u *User) UnmarkManager() {
	if u.IsManager {
		u.IsManager = false
		u.IncrementVersion()
	}
}

func isValidRole(role UserRole) bool {
	switch role {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}
