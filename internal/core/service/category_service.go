package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

type CategoryService struct {
	repo     ports.CategoryRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, accounts ports.AccountRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, accounts: accounts, logger: logger}
}

// List returns every category sorted by name with its creator resolved,
// plus the collection total. The collection is assumed bounded; there is no
// pagination here.
func (s *CategoryService) List(ctx context.Context) (*ports.CategoryListResult, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	creators, err := s.resolveCreators(ctx, categories)
	if err != nil {
		return nil, err
	}

	items := make([]ports.CategoryView, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryView(c, creators[c.CreatedBy]))
	}

	return &ports.CategoryListResult{Items: items, Total: total}, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*ports.CategoryView, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toCategoryView(c, nil)
	return &view, nil
}

// Create inserts a new category owned by the principal. A storage-level
// unique-index violation surfaces as domain.ErrDuplicateCategory; the
// insert is the only write, so concurrent creators of the same name race at
// the index, not in this code.
func (s *CategoryService) Create(ctx context.Context, name string, p domain.Principal) (*ports.CategoryView, error) {
	if err := domain.Authorize(p, domain.OpCreate, domain.KindCategory); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrValidation("nombre is required")
	}

	created, err := s.repo.Insert(ctx, &domain.Category{Name: name, CreatedBy: p.AccountID})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", created.ID).Str("account_id", p.AccountID).Msg("category created")

	view := toCategoryView(created, nil)
	return &view, nil
}

// Update renames a category. Merge semantics: the name is the only mutable
// field, and uniqueness is re-checked by the index on the update itself.
func (s *CategoryService) Update(ctx context.Context, id, name string, p domain.Principal) (*ports.CategoryView, error) {
	if err := domain.Authorize(p, domain.OpUpdate, domain.KindCategory); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrValidation("nombre is required")
	}

	updated, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, err
	}

	view := toCategoryView(updated, nil)
	return &view, nil
}

// Remove physically deletes a category. This is the one true delete in the
// model; products referencing the removed id keep their dangling reference.
func (s *CategoryService) Remove(ctx context.Context, id string, p domain.Principal) (*ports.CategoryRemoved, error) {
	if err := domain.Authorize(p, domain.OpRetire, domain.KindCategory); err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", id).Str("name", removed.Name).Msg("category removed")

	return &ports.CategoryRemoved{Name: removed.Name}, nil
}

func (s *CategoryService) resolveCreators(ctx context.Context, categories []*domain.Category) (map[string]*domain.Account, error) {
	ids := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.CreatedBy != "" && !seen[c.CreatedBy] {
			seen[c.CreatedBy] = true
			ids = append(ids, c.CreatedBy)
		}
	}
	if len(ids) == 0 {
		return map[string]*domain.Account{}, nil
	}
	return s.accounts.FindByIDs(ctx, ids)
}

func toCategoryView(c *domain.Category, creator *domain.Account) ports.CategoryView {
	view := ports.CategoryView{ID: c.ID, Name: c.Name}
	if creator != nil {
		view.CreatedBy = &ports.CreatorRef{DisplayName: creator.DisplayName, Email: creator.Email}
	}
	return view
}
