package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/shared"
	"github.com/localmarket/backend/internal/domain/taxonomy"
)

// AssociationService manages the type-category and
// category-subcategory join tables.
type AssociationService struct {
	assocRepo    catalog.AssociationRepository
	typeRepo     taxonomy.ShopTypeRepository
	categoryRepo catalog.CategoryRepository
	subcatRepo   catalog.SubcategoryRepository
}

// NewAssociationService creates a new AssociationService
func NewAssociationService(
	assocRepo catalog.AssociationRepository,
	typeRepo taxonomy.ShopTypeRepository,
	categoryRepo catalog.CategoryRepository,
	subcatRepo catalog.SubcategoryRepository,
) *AssociationService {
	return &AssociationService{
		assocRepo:    assocRepo,
		typeRepo:     typeRepo,
		categoryRepo: categoryRepo,
		subcatRepo:   subcatRepo,
	}
}

// LinkTypeCategory associates a shop type with a category. Both sides
// must exist and be verified; duplicate pairs are rejected.
func (s *AssociationService) LinkTypeCategory(ctx context.Context, req CreateTypeCategoryRequest) (*AssociationResponse, error) {
	shopType, err := s.typeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		return nil, err
	}
	if !shopType.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Shop type has not been verified")
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Category has not been verified")
	}

	exists, err := s.assocRepo.TypeCategoryExists(ctx, req.TypeID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "This type-category association already exists")
	}

	link, derr := catalog.NewTypeCategory(req.TypeID, req.CategoryID)
	if derr != nil {
		return nil, derr
	}

	if err := s.assocRepo.SaveTypeCategory(ctx, link); err != nil {
		return nil, err
	}

	return &AssociationResponse{
		ID:        link.ID,
		LeftID:    link.TypeID,
		RightID:   link.CategoryID,
		CreatedAt: link.CreatedAt,
	}, nil
}

// ListTypeCategories returns the categories linked to a shop type
func (s *AssociationService) ListTypeCategories(ctx context.Context, typeID uuid.UUID) ([]AssociationResponse, error) {
	links, err := s.assocRepo.FindTypeCategoriesByType(ctx, typeID)
	if err != nil {
		return nil, err
	}

	out := make([]AssociationResponse, 0, len(links))
	for i := range links {
		out = append(out, AssociationResponse{
			ID:        links[i].ID,
			LeftID:    links[i].TypeID,
			RightID:   links[i].CategoryID,
			CreatedAt: links[i].CreatedAt,
		})
	}
	return out, nil
}

// UnlinkTypeCategory removes one type-category association
func (s *AssociationService) UnlinkTypeCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.assocRepo.FindTypeCategoryByID(ctx, id); err != nil {
		return err
	}
	return s.assocRepo.DeleteTypeCategory(ctx, id)
}

// UnlinkTypeCategoriesByType removes every association of a shop type
// and returns the number removed
func (s *AssociationService) UnlinkTypeCategoriesByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	return s.assocRepo.DeleteTypeCategoriesByType(ctx, typeID)
}

// LinkCategorySubcategory associates a category with a subcategory.
// Both sides must exist and be verified; duplicate pairs are rejected.
func (s *AssociationService) LinkCategorySubcategory(ctx context.Context, req CreateCategorySubcategoryRequest) (*AssociationResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Category has not been verified")
	}

	subcategory, err := s.subcatRepo.FindByID(ctx, req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if !subcategory.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Subcategory has not been verified")
	}

	exists, err := s.assocRepo.CategorySubcategoryExists(ctx, req.CategoryID, req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "This category-subcategory association already exists")
	}

	link, derr := catalog.NewCategorySubcategory(req.CategoryID, req.SubcategoryID)
	if derr != nil {
		return nil, derr
	}

	if err := s.assocRepo.SaveCategorySubcategory(ctx, link); err != nil {
		return nil, err
	}

	return &AssociationResponse{
		ID:        link.ID,
		LeftID:    link.CategoryID,
		RightID:   link.SubcategoryID,
		CreatedAt: link.CreatedAt,
	}, nil
}

// LinkSubcategoriesBatch associates a category with several
// subcategories at once, skipping pairs that already exist.
func (s *AssociationService) LinkSubcategoriesBatch(ctx context.Context, req BatchLinkSubcategoriesRequest) (*catalog.BatchLinkResult, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.Verified {
		return nil, shared.NewDomainError("NOT_VERIFIED", "Category has not been verified")
	}

	for _, subID := range req.SubcategoryIDs {
		if _, err := s.subcatRepo.FindByID(ctx, subID); err != nil {
			return nil, err
		}
	}

	result, err := s.assocRepo.SaveCategorySubcategoryBatch(ctx, req.CategoryID, req.SubcategoryIDs)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCategorySubcategories returns the subcategory links of a category
func (s *AssociationService) ListCategorySubcategories(ctx context.Context, categoryID uuid.UUID) ([]AssociationResponse, error) {
	links, err := s.assocRepo.FindCategorySubcategoriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	out := make([]AssociationResponse, 0, len(links))
	for i := range links {
		out = append(out, AssociationResponse{
			ID:        links[i].ID,
			LeftID:    links[i].CategoryID,
			RightID:   links[i].SubcategoryID,
			CreatedAt: links[i].CreatedAt,
		})
	}
	return out, nil
}

// UnlinkCategorySubcategory removes one category-subcategory association
func (s *AssociationService) UnlinkCategorySubcategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.assocRepo.FindCategorySubcategoryByID(ctx, id); err != nil {
		return err
	}
	return s.assocRepo.DeleteCategorySubcategory(ctx, id)
}

// UnlinkCategorySubcategoriesByCategory removes every subcategory link
// of a category and returns the number removed
func (s *AssociationService) UnlinkCategorySubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return s.assocRepo.DeleteCategorySubcategoriesByCategory(ctx, categoryID)
}
