package organization

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/shared"
)

// Publication is an announcement posted by an organization.
type Publication struct {
	shared.BaseAggregateRoot
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(150);not null"`
	Body      string    `gorm:"type:text"`
	ImagePath string    `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (Publication) TableName() string {
	return "publications"
}

// NewPublication creates a new announcement for an organization
func NewPublication(orgID uuid.UUID, title, body string) (*Publication, *shared.DomainError) {
	if orgID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Organization ID is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Title is required")
	}
	if len(title) > 150 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Title must not exceed 150 characters")
	}

	return &Publication{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrgID:             orgID,
		Title:             title,
		Body:              strings.TrimSpace(body),
	}, nil
}

// Update changes the title and body of the publication
func (p *Publication) Update(title, body string) *shared.DomainError {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_INPUT", "Title is required")
	}
	if len(title) > 150 {
		return shared.NewDomainError("INVALID_INPUT", "Title must not exceed 150 characters")
	}

	p.Title = title
	p.Body = strings.TrimSpace(body)
	p.IncrementVersion()
	return nil
}

// SetImagePath records the stored image location
func (p *Publication) SetImagePath(path string) {
	p.ImagePath = path
	p.IncrementVersion()
}
