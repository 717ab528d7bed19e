package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories, mirroring the real Mongo query semantics
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byID      map[string]*domain.Account
	nextID    int
	insertErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Insert(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account)
	for _, id := range ids {
		if a, ok := r.byID[id]; ok {
			clone := *a
			clone.PasswordHash = ""
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubAccountRepo) FindActive(_ context.Context, offset, limit int64) ([]*domain.Account, error) {
	var active []*domain.Account
	for _, a := range r.byID {
		if a.Active {
			clone := *a
			clone.PasswordHash = "" // projection strips the hash
			active = append(active, &clone)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return page(active, offset, limit), nil
}

func (r *stubAccountRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, a := range r.byID {
		if a.Active {
			n++
		}
	}
	return n, nil
}

func (r *stubAccountRepo) Update(_ context.Context, id string, patch ports.AccountUpdate) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Email != nil {
		for otherID, other := range r.byID {
			if otherID != id && other.Email == *patch.Email {
				return nil, domain.ErrDuplicateEmail
			}
		}
		a.Email = *patch.Email
	}
	if patch.DisplayName != nil {
		a.DisplayName = *patch.DisplayName
	}
	if patch.AvatarRef != nil {
		a.AvatarRef = *patch.AvatarRef
	}
	if patch.Role != nil {
		a.Role = *patch.Role
	}
	if patch.Active != nil {
		a.Active = *patch.Active
	}
	clone := *a
	clone.PasswordHash = ""
	return &clone, nil
}

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	nextID int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for _, existing := range r.byID {
		if existing.Name == c.Name {
			return nil, domain.ErrDuplicateCategory
		}
	}
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cat_%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Category, error) {
	out := make(map[string]*domain.Category)
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			clone := *c
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubCategoryRepo) UpdateName(_ context.Context, id, name string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	for otherID, other := range r.byID {
		if otherID != id && other.Name == name {
			return nil, domain.ErrDuplicateCategory
		}
	}
	c.Name = name
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return c, nil
}

type stubProductRepo struct {
	byID   map[string]*domain.Product
	nextID int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("prod_%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindAvailable(_ context.Context, offset, limit int64) ([]*domain.Product, error) {
	var available []*domain.Product
	for _, p := range r.byID {
		if p.Available {
			clone := *p
			available = append(available, &clone)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].Name < available[j].Name })
	return page(available, offset, limit), nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, term string) ([]*domain.Product, error) {
	var matched []*domain.Product
	for _, p := range r.byID {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			clone := *p
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

func (r *stubProductRepo) Replace(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	out := clone
	return &out, nil
}

func page[T any](items []*T, offset, limit int64) []*T {
	if offset >= int64(len(items)) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[offset:end]
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

func adminPrincipal() domain.Principal {
	return domain.Principal{AccountID: "acc_admin", Role: domain.RoleAdmin}
}

func userPrincipal() domain.Principal {
	return domain.Principal{AccountID: "acc_user", Role: domain.RoleUser}
}
