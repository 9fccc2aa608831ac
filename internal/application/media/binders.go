package media

import (
	"context"

	"github.com/google/uuid"

	"github.com/localmarket/backend/internal/domain/catalog"
	"github.com/localmarket/backend/internal/domain/organization"
	"github.com/localmarket/backend/internal/domain/shop"
)

// ShopBinder binds uploaded images to shops
type ShopBinder struct {
	repo shop.Repository
}

// NewShopBinder creates a Binder backed by the shop repository
func NewShopBinder(repo shop.Repository) *ShopBinder {
	return &ShopBinder{repo: repo}
}

func (b *ShopBinder) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := b.repo.FindByID(ctx, id)
	return err
}

func (b *ShopBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	return b.repo.SetImagePath(ctx, id, path)
}

// ProductBinder binds uploaded images to products
type ProductBinder struct {
	repo catalog.ProductRepository
}

// NewProductBinder creates a Binder backed by the product repository
func NewProductBinder(repo catalog.ProductRepository) *ProductBinder {
	return &ProductBinder{repo: repo}
}

func (b *ProductBinder) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := b.repo.FindByID(ctx, id)
	return err
}

func (b *ProductBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	return b.repo.SetImagePath(ctx, id, path)
}

// PackageBinder binds uploaded images to product packages
type PackageBinder struct {
	repo catalog.PackageRepository
}

// NewPackageBinder creates a Binder backed by the package repository
func NewPackageBinder(repo catalog.PackageRepository) *PackageBinder {
	return &PackageBinder{repo: repo}
}

func (b *PackageBinder) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := b.repo.FindByID(ctx, id)
	return err
}

func (b *PackageBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	return b.repo.SetImagePath(ctx, id, path)
}

// OrganizationBinder binds uploaded images to organizations
type OrganizationBinder struct {
	repo organization.Repository
}

// NewOrganizationBinder creates a Binder backed by the organization repository
func NewOrganizationBinder(repo organization.Repository) *OrganizationBinder {
	return &OrganizationBinder{repo: repo}
}

func (b *OrganizationBinder) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := b.repo.FindByID(ctx, id)
	return err
}

func (b *OrganizationBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	return b.repo.SetImagePath(ctx, id, path)
}

// PublicationBinder binds uploaded images to organization publications
type PublicationBinder struct {
	repo organization.PublicationRepository
}

// NewPublicationBinder creates a Binder backed by the publication repository
func NewPublicationBinder(repo organization.PublicationRepository) *PublicationBinder {
	return &PublicationBinder{repo: repo}
}

func (b *PublicationBinder) Exists(ctx context.Context, id uuid.UUID) error {
	_, err := b.repo.FindByID(ctx, id)
	return err
}

func (b *PublicationBinder) SetImage(ctx context.Context, id uuid.UUID, path string) error {
	return b.repo.SetImagePath(ctx, id, path)
}

var (
	_ Binder = (*ShopBinder)(nil)
	_ Binder = (*ProductBinder)(nil)
	_ Binder = (*PackageBinder)(nil)
	_ Binder = (*OrganizationBinder)(nil)
	_ Binder = (*PublicationBinder)(nil)
)
