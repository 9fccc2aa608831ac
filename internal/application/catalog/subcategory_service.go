package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
)

// SubcategoryService handles subcategory business operations,
// including the product migration used before destructive changes.
type SubcategoryService struct {
	subcatRepo   catalog.SubcategoryRepository
	categoryRepo catalog.CategoryRepository
	publisher    shared.EventPublisher
}

// NewSubcategoryService creates a new SubcategoryService
func NewSubcategoryService(
	subcatRepo catalog.SubcategoryRepository,
	categoryRepo catalog.CategoryRepository,
	publisher shared.EventPublisher,
) *SubcategoryService {
	return &SubcategoryService{
		subcatRepo:   subcatRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// Create creates a subcategory under an existing category
func (s *SubcategoryService) Create(ctx context.Context, req CreateSubcategoryRequest) (*SubcategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.subcatRepo.ExistsByNameInCategory(ctx, req.CategoryID, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Subcategory with this name already exists in this category")
	}

	createdBy := uuid.Nil
	if req.CreatedBy != nil {
		createdBy = *req.CreatedBy
	}

	subcategory, derr := catalog.NewSubcategory(req.CategoryID, req.Name, req.Description, createdBy)
	if derr != nil {
		return nil, derr
	}

	if err := s.subcatRepo.Save(ctx, subcategory); err != nil {
		return nil, err
	}

	s.publish(ctx, subcategory.GetDomainEvents()...)
	subcategory.ClearDomainEvents()
	return ToSubcategoryResponse(subcategory), nil
}

// List retrieves subcategories with pagination
func (s *SubcategoryService) List(ctx context.Context, filter shared.Filter) ([]SubcategoryResponse, error) {
	subcategories, err := s.subcatRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToSubcategoryResponses(subcategories), nil
}

// ListByCategory retrieves the subcategories of one category
func (s *SubcategoryService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubcategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	subcategories, err := s.subcatRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return ToSubcategoryResponses(subcategories), nil
}

// GetByID retrieves a subcategory by ID
func (s *SubcategoryService) GetByID(ctx context.Context, id uuid.UUID) (*SubcategoryResponse, error) {
	subcategory, err := s.subcatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSubcategoryResponse(subcategory), nil
}

// Update renames a subcategory without touching dependents
func (s *SubcategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateSubcategoryRequest) (*SubcategoryResponse, error) {
	subcategory, err := s.subcatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != subcategory.Name {
		exists, err := s.subcatRepo.ExistsByNameInCategory(ctx, subcategory.CategoryID, req.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Subcategory with this name already exists in this category")
		}
	}

	if derr := subcategory.Update(req.Name, req.Description); derr != nil {
		return nil, derr
	}

	if err := s.subcatRepo.Save(ctx, subcategory); err != nil {
		return nil, err
	}
	return ToSubcategoryResponse(subcategory), nil
}

// UpdateCascade renames a subcategory and reports how many products
// sit under it. Products are not mutated.
func (s *SubcategoryService) UpdateCascade(ctx context.Context, id uuid.UUID, req UpdateSubcategoryRequest) (*SubcategoryResponse, int64, error) {
	affected, err := s.subcatRepo.CountProducts(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.Update(ctx, id, req)
	if err != nil {
		return nil, 0, err
	}
	return resp, affected, nil
}

// Verify marks a subcategory as approved
func (s *SubcategoryService) Verify(ctx context.Context, id uuid.UUID) error {
	return s.setVerified(ctx, id, true)
}

// Unverify revokes a subcategory's approval
func (s *SubcategoryService) Unverify(ctx context.Context, id uuid.UUID) error {
	return s.setVerified(ctx, id, false)
}

func (s *SubcategoryService) setVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	subcategory, err := s.subcatRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var derr *shared.DomainError
	if verified {
		derr = subcategory.Verify()
	} else {
		derr = subcategory.Unverify()
	}
	if derr != nil {
		return derr
	}

	return s.subcatRepo.Save(ctx, subcategory)
}

// CheckAffectedProducts reports the products a destructive change would touch
func (s *SubcategoryService) CheckAffectedProducts(ctx context.Context, id uuid.UUID) (*AffectedProductsResponse, error) {
	if _, err := s.subcatRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	products, err := s.subcatRepo.FindProducts(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AffectedProductsResponse{
		Count:    int64(len(products)),
		Products: ToProductResponses(products),
	}, nil
}

// Delete hard-deletes a subcategory. Blocked with the product count
// while products still reference it.
func (s *SubcategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.subcatRepo.FindByID(ctx, id); err != nil {
		return err
	}

	products, err := s.subcatRepo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return shared.NewDomainError("IN_USE", "Subcategory still has products").
			WithDetails(map[string]interface{}{"products": products})
	}

	return s.subcatRepo.Delete(ctx, id)
}

// DeleteCascade hard-deletes a subcategory together with its products
// and association rows, in one transaction. Returns the product count.
func (s *SubcategoryService) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.subcatRepo.FindByID(ctx, id); err != nil {
		return 0, err
	}

	return s.subcatRepo.DeleteCascade(ctx, id)
}

// MigrateProducts moves every product from one subcategory to another.
// Source and target must differ and both must exist. The target's
// verification state is not checked: a freshly created bucket is a
// valid migration target.
func (s *SubcategoryService) MigrateProducts(ctx context.Context, req MigrateProductsRequest) (*MigrationResponse, error) {
	if req.FromSubcategoryID == req.ToSubcategoryID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Source and target subcategories must differ")
	}

	if _, err := s.subcatRepo.FindByID(ctx, req.FromSubcategoryID); err != nil {
		return nil, err
	}
	if _, err := s.subcatRepo.FindByID(ctx, req.ToSubcategoryID); err != nil {
		return nil, err
	}

	count, err := s.subcatRepo.MigrateProducts(ctx, req.FromSubcategoryID, req.ToSubcategoryID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, catalog.NewProductsMigratedEvent(req.FromSubcategoryID, req.ToSubcategoryID, count))
	return &MigrationResponse{
		FromSubcategoryID: req.FromSubcategoryID,
		ToSubcategoryID:   req.ToSubcategoryID,
		MigratedCount:     count,
	}, nil
}

func (s *SubcategoryService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.publisher != nil && len(events) > 0 {
		_ = s.publisher.Publish(ctx, events...)
	}
}
