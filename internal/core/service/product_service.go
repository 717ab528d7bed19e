package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// listPageSize is the fixed page size for product listings.
const listPageSize = 5

type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	accounts   ports.AccountRepository
	logger     zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, accounts ports.AccountRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, accounts: accounts, logger: logger}
}

// List returns one page of available products sorted by name. Offset is
// already sanitized by the transport layer; a negative value is coerced
// here as well so the storage query never sees one.
func (s *ProductService) List(ctx context.Context, offset int64) ([]ports.ProductView, error) {
	if offset < 0 {
		offset = 0
	}

	products, err := s.repo.FindAvailable(ctx, offset, listPageSize)
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, products, true)
}

// Get looks a product up by id with both references resolved. Availability
// is not filtered: direct lookups see retired products.
func (s *ProductService) Get(ctx context.Context, id string) (*ports.ProductView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.resolve(ctx, []*domain.Product{p}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Search matches term as a case-insensitive substring of the product name.
// Only the category reference is resolved, matching the read shape of the
// search endpoint; availability is not filtered and no limit applies.
func (s *ProductService) Search(ctx context.Context, term string) ([]ports.ProductView, error) {
	products, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, products, false)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput, p domain.Principal) (*ports.ProductView, error) {
	if err := domain.Authorize(p, domain.OpCreate, domain.KindProduct); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrValidation("nombre is required")
	}
	if in.UnitPrice < 0 {
		return nil, domain.ErrValidation("precioUni must not be negative")
	}
	if in.CategoryID == "" {
		return nil, domain.ErrValidation("categoria is required")
	}

	// Category existence is deliberately not checked: references may
	// dangle, consistent with non-cascading category removal.
	created, err := s.repo.Insert(ctx, &domain.Product{
		Name:        name,
		UnitPrice:   in.UnitPrice,
		Description: in.Description,
		Available:   true,
		CategoryID:  in.CategoryID,
		CreatedBy:   p.AccountID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("account_id", p.AccountID).Msg("product created")

	view := toProductView(created, nil, nil)
	return &view, nil
}

// Update replaces the whole mutable field set with the request values.
// A field the caller omitted arrives zero-valued and overwrites the stored
// one; this is overwrite semantics, not the merge that categories and
// accounts use.
func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput, p domain.Principal) (*ports.ProductView, error) {
	if err := domain.Authorize(p, domain.OpUpdate, domain.KindProduct); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.UnitPrice = in.UnitPrice
	existing.Description = in.Description
	existing.CategoryID = in.CategoryID
	existing.Available = in.Available

	updated, err := s.repo.Replace(ctx, existing)
	if err != nil {
		return nil, err
	}

	view := toProductView(updated, nil, nil)
	return &view, nil
}

// Retire soft-deletes a product by forcing Available to false; whatever
// availability the caller sent is ignored. The record persists for audit
// and stays reachable through Get.
func (s *ProductService) Retire(ctx context.Context, id string, p domain.Principal) (*ports.ProductView, error) {
	if err := domain.Authorize(p, domain.OpRetire, domain.KindProduct); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Available = false

	updated, err := s.repo.Replace(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Str("account_id", p.AccountID).Msg("product retired")

	view := toProductView(updated, nil, nil)
	return &view, nil
}

// resolve expands the stored references into display subsets. Dangling
// references resolve to nothing rather than failing the read.
func (s *ProductService) resolve(ctx context.Context, products []*domain.Product, withCreator bool) ([]ports.ProductView, error) {
	categoryIDs := make([]string, 0, len(products))
	accountIDs := make([]string, 0, len(products))
	seenCat := make(map[string]bool)
	seenAcc := make(map[string]bool)
	for _, p := range products {
		if p.CategoryID != "" && !seenCat[p.CategoryID] {
			seenCat[p.CategoryID] = true
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
		if withCreator && p.CreatedBy != "" && !seenAcc[p.CreatedBy] {
			seenAcc[p.CreatedBy] = true
			accountIDs = append(accountIDs, p.CreatedBy)
		}
	}

	categories := map[string]*domain.Category{}
	if len(categoryIDs) > 0 {
		var err error
		if categories, err = s.categories.FindByIDs(ctx, categoryIDs); err != nil {
			return nil, err
		}
	}

	accounts := map[string]*domain.Account{}
	if len(accountIDs) > 0 {
		var err error
		if accounts, err = s.accounts.FindByIDs(ctx, accountIDs); err != nil {
			return nil, err
		}
	}

	views := make([]ports.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p, categories[p.CategoryID], accounts[p.CreatedBy]))
	}
	return views, nil
}

func toProductView(p *domain.Product, category *domain.Category, creator *domain.Account) ports.ProductView {
	view := ports.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		UnitPrice:   p.UnitPrice,
		Description: p.Description,
		Available:   p.Available,
	}
	if category != nil {
		view.Category = &ports.CategoryRef{Name: category.Name}
	}
	if creator != nil {
		view.CreatedBy = &ports.CreatorRef{DisplayName: creator.DisplayName, Email: creator.Email}
	}
	return view
}
