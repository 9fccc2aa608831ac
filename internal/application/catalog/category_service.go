// Package catalog implements the application services for product
// classification: categories, subcategories, their association tables,
// and the products and packages shops publish.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
)

// CategoryService handles category business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	subcatRepo   catalog.SubcategoryRepository
	typeRepo     taxonomy.ShopTypeRepository
	publisher    shared.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	subcatRepo catalog.SubcategoryRepository,
	typeRepo taxonomy.ShopTypeRepository,
	publisher shared.EventPublisher,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		subcatRepo:   subcatRepo,
		typeRepo:     typeRepo,
		publisher:    publisher,
	}
}

// Create creates a category and its shop-type association in one transaction
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	shopType, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		return nil, err
	}
	if !shopType.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot link a category to an inactive shop type")
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	category, derr := catalog.NewCategory(req.Name, req.Description, createdBy)
	if derr != nil {
		return nil, derr
	}

	if err := s.categoryRepo.CreateWithTypeLink(ctx, category, req.TypeID); err != nil {
		return nil, err
	}

	s.publish(ctx, category.GetDomainEvents()...)
	category.ClearDomainEvents()
	return ToCategoryResponse(category), nil
}

// List retrieves categories with pagination
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) ([]CategoryResponse, int64, error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToCategoryResponses(categories), total, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Update renames a category without touching dependents
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		exists, err := s.categoryRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		}
	}

	if derr := category.Update(req.Name, req.Description); derr != nil {
		return nil, derr
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// UpdateCascade renames a category and reports how many products sit
// under it. Products are not mutated; the count lets clients surface
// the blast radius of the rename.
func (s *CategoryService) UpdateCascade(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, int64, error) {
	affected, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.Update(ctx, id, req)
	if err != nil {
		return nil, 0, err
	}
	return resp, affected, nil
}

// Verify marks a category as approved
func (s *CategoryService) Verify(ctx context.Context, id uuid.UUID) error {
	return s.setVerified(ctx, id, true)
}

// Unverify revokes a category's approval
func (s *CategoryService) Unverify(ctx context.Context, id uuid.UUID) error {
	return s.setVerified(ctx, id, false)
}

func (s *CategoryService) setVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var derr *shared.DomainError
	if verified {
		derr = category.Verify()
	} else {
		derr = category.Unverify()
	}
	if derr != nil {
		return derr
	}

	return s.categoryRepo.Save(ctx, category)
}

// CheckAffected reports what a delete would take down with the category
func (s *CategoryService) CheckAffected(ctx context.Context, id uuid.UUID) (*catalog.CascadeResult, error) {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	subcategories, err := s.categoryRepo.CountSubcategories(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return nil, err
	}

	return &catalog.CascadeResult{Subcategories: subcategories, Products: products}, nil
}

// Delete hard-deletes a category. Blocked with dependent counts while
// subcategories or products still reference it.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.CheckAffected(ctx, id)
	if err != nil {
		return err
	}

	if affected.Subcategories > 0 || affected.Products > 0 {
		return shared.NewDomainError("IN_USE", "Category still has dependent records").
			WithDetails(map[string]interface{}{
				"subcategories": affected.Subcategories,
				"products":      affected.Products,
			})
	}

	return s.categoryRepo.Delete(ctx, id)
}

// DeleteCascade hard-deletes a category together with its subcategories,
// their products, and all association rows, in one transaction.
func (s *CategoryService) DeleteCascade(ctx context.Context, id uuid.UUID) (*catalog.CascadeResult, error) {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	result, err := s.categoryRepo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, catalog.NewCategoryDeletedEvent(id, result.Subcategories, result.Products))
	return &result, nil
}

func (s *CategoryService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.publisher != nil && len(events) > 0 {
		// Event delivery is best-effort; the bus logs handler failures.
		_ = s.publisher.Publish(ctx, events...)
	}
}
