// Package catalog contains the product classification registry
// (categories and subcategories), their association tables, and the
// products and packages that shops publish.
package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Category classifies products at the top level. Categories are
// hard-deleted; dependent subcategories and products must be handled
// (blocked or cascaded) before the row goes away.
type Category struct {
	shared.AuditedAggregateRoot
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`
	Verified    bool   `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new unverified category
func NewCategory(name, description string, createdBy uuid.UUID) (*Category, *shared.DomainError) {
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	c := &Category{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		Description:          strings.TrimSpace(description),
	}

	c.AddDomainEvent(NewCategoryCreatedEvent(c.ID, c.Name))
	return c, nil
}

// Update changes the mutable attributes of the category
func (c *Category) Update(name, description string) *shared.DomainError {
	name = strings.TrimSpace(name)
	if err := validateCatalogName(name); err != nil {
		return err
	}

	c.Name = name
	c.Description = strings.TrimSpace(description)
	c.IncrementVersion()
	return nil
}

// Verify marks the category as approved for association and product use
func (c *Category) Verify() *shared.DomainError {
	if c.Verified {
		return shared.NewDomainError("INVALID_STATE", "Category is already verified")
	}
	c.Verified = true
	c.IncrementVersion()
	return nil
}

// Unverify revokes the approval
func (c *Category) Unverify() *shared.DomainError {
	if !c.Verified {
		return shared.NewDomainError("INVALID_STATE", "Category is not verified")
	}
	c.Verified = false
	c.IncrementVersion()
	return nil
}

func validateCatalogName(name string) *shared.DomainError {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_INPUT", "Name must be at least 2 characters")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Name must not exceed 100 characters")
	}
	return nil
}
