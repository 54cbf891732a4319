package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	domain "github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/store"
)

var (
	// ErrCatalogStoreMissing indicates the state store dependency is absent.
	ErrCatalogStoreMissing = errors.New("catalog service: state store is not configured")
	// ErrCatalogInvalidInput indicates the caller supplied invalid data to a catalog mutation.
	ErrCatalogInvalidInput = errors.New("catalog service: invalid input")
)

// CatalogServiceDeps bundles constructor inputs for the catalog service.
type CatalogServiceDeps struct {
	Store       *store.Store
	IDGenerator func() string
	Logger      func(ctx context.Context, event string, fields map[string]any)
}

type catalogService struct {
	store  *store.Store
	newID  func() string
	logger func(ctx context.Context, event string, fields map[string]any)
}

// NewCatalogService constructs the catalog service with the supplied dependencies.
func NewCatalogService(deps CatalogServiceDeps) (CatalogService, error) {
	if deps.Store == nil {
		return nil, ErrCatalogStoreMissing
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &catalogService{
		store:  deps.Store,
		newID:  idGen,
		logger: logger,
	}, nil
}

func (s *catalogService) List(_ context.Context) []Product {
	return s.store.Catalog()
}

// Search updates the live query and returns the filtered catalog. The query
// is kept as state so subsequent reads observe the same filtered view.
func (s *catalogService) Search(_ context.Context, query string) []Product {
	s.store.SetSearchQuery(query)
	return s.store.FilteredProducts()
}

func (s *catalogService) Create(ctx context.Context, cmd CreateProductCommand) (Product, error) {
	product, err := normalizeProduct(cmd.Product)
	if err != nil {
		return Product{}, err
	}
	if product.ID == "" {
		product.ID = s.newID()
	}

	s.store.AddProduct(product)
	s.logger(ctx, "catalog.product_created", map[string]any{
		"productID": product.ID,
		"category":  string(product.Category),
	})
	return product, nil
}

// Update replaces the entry matching the product id. A non-matching id
// produces no visible change and no error, mirroring the catalog's
// silently-ignored mutation contract.
func (s *catalogService) Update(ctx context.Context, cmd UpdateProductCommand) (Product, error) {
	product, err := normalizeProduct(cmd.Product)
	if err != nil {
		return Product{}, err
	}
	if product.ID == "" {
		return Product{}, fmt.Errorf("%w: product id is required", ErrCatalogInvalidInput)
	}

	s.store.UpdateProduct(product)
	s.logger(ctx, "catalog.product_updated", map[string]any{"productID": product.ID})
	return product, nil
}

func (s *catalogService) Delete(ctx context.Context, productID string) error {
	id := strings.TrimSpace(productID)
	if id == "" {
		return fmt.Errorf("%w: product id is required", ErrCatalogInvalidInput)
	}
	s.store.DeleteProduct(id)
	s.logger(ctx, "catalog.product_deleted", map[string]any{"productID": id})
	return nil
}

func normalizeProduct(p Product) (Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.NameAr = strings.TrimSpace(p.NameAr)
	p.NameEn = strings.TrimSpace(p.NameEn)
	p.DescriptionAr = strings.TrimSpace(p.DescriptionAr)
	p.DescriptionEn = strings.TrimSpace(p.DescriptionEn)
	p.Image = strings.TrimSpace(p.Image)

	if p.NameAr == "" && p.NameEn == "" {
		return Product{}, fmt.Errorf("%w: a display name is required", ErrCatalogInvalidInput)
	}
	if p.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must be non-negative", ErrCatalogInvalidInput)
	}
	if p.Category == "" {
		p.Category = domain.CategoryOther
	}
	if !p.Category.Valid() {
		return Product{}, fmt.Errorf("%w: unknown category %q", ErrCatalogInvalidInput, p.Category)
	}
	if !p.IsOffer {
		p.OldPrice = 0
	}
	return p, nil
}
