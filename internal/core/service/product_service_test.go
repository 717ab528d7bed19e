package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

func newProductService() (*ProductService, *stubProductRepo, *stubCategoryRepo, *stubAccountRepo) {
	products := newStubProductRepo()
	categories := newStubCategoryRepo()
	accounts := newStubAccountRepo()
	return NewProductService(products, categories, accounts, discardLogger), products, categories, accounts
}

func createInput(name string, categoryID string) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        name,
		UnitPrice:   25.5,
		Description: "de la casa",
		CategoryID:  categoryID,
	}
}

func TestProductService_Create_DefaultsAvailable(t *testing.T) {
	svc, repo, _, _ := newProductService()

	view, err := svc.Create(context.Background(), createInput("Tacos", "cat_1"), userPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Available {
		t.Error("new products must default to available")
	}

	stored := repo.byID[view.ID]
	if stored.CreatedBy != "acc_user" {
		t.Errorf("expected creator acc_user, got %q", stored.CreatedBy)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newProductService()

	cases := []struct {
		name  string
		input ports.CreateProductInput
	}{
		{"empty name", ports.CreateProductInput{UnitPrice: 1, CategoryID: "cat_1"}},
		{"negative price", ports.CreateProductInput{Name: "Tacos", UnitPrice: -1, CategoryID: "cat_1"}},
		{"missing category", ports.CreateProductInput{Name: "Tacos", UnitPrice: 1}},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.input, userPrincipal())
		var ve domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestProductService_Create_AcceptsDanglingCategory(t *testing.T) {
	svc, _, _, _ := newProductService()

	// the referenced category does not exist; creation still succeeds
	if _, err := svc.Create(context.Background(), createInput("Tacos", "cat_gone"), userPrincipal()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductService_List_PagesOfFiveAvailableOnly(t *testing.T) {
	svc, repo, _, _ := newProductService()

	for i := 0; i < 12; i++ {
		_, _ = repo.Insert(context.Background(), &domain.Product{
			Name: fmt.Sprintf("Item-%02d", i), Available: true,
		})
	}
	// retired products never show up, whatever page they would land on
	_, _ = repo.Insert(context.Background(), &domain.Product{Name: "Item-00-retired", Available: false})

	first, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("expected pages of 5, got %d and %d", len(first), len(second))
	}

	// disjoint, contiguous, name-sorted slices
	for i := 0; i < 5; i++ {
		wantFirst := fmt.Sprintf("Item-%02d", i)
		wantSecond := fmt.Sprintf("Item-%02d", i+5)
		if first[i].Name != wantFirst {
			t.Errorf("first page position %d: expected %q, got %q", i, wantFirst, first[i].Name)
		}
		if second[i].Name != wantSecond {
			t.Errorf("second page position %d: expected %q, got %q", i, wantSecond, second[i].Name)
		}
	}

	for _, v := range append(first, second...) {
		if !v.Available {
			t.Errorf("retired product %q leaked into the listing", v.Name)
		}
	}
}

func TestProductService_List_NegativeOffsetCoerced(t *testing.T) {
	svc, repo, _, _ := newProductService()
	_, _ = repo.Insert(context.Background(), &domain.Product{Name: "Tacos", Available: true})

	views, err := svc.List(context.Background(), -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 product, got %d", len(views))
	}
}

func TestProductService_List_ResolvesReferences(t *testing.T) {
	svc, repo, categories, accounts := newProductService()

	cat, _ := categories.Insert(context.Background(), &domain.Category{Name: "Bebidas"})
	acc, _ := accounts.Insert(context.Background(), &domain.Account{
		DisplayName: "Ana", Email: "ana@example.com", Active: true, Role: domain.RoleUser,
	})
	_, _ = repo.Insert(context.Background(), &domain.Product{
		Name: "Agua", Available: true, CategoryID: cat.ID, CreatedBy: acc.ID,
	})

	views, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].Category == nil || views[0].Category.Name != "Bebidas" {
		t.Errorf("category not resolved: %+v", views[0].Category)
	}
	if views[0].CreatedBy == nil || views[0].CreatedBy.Email != "ana@example.com" {
		t.Errorf("creator not resolved: %+v", views[0].CreatedBy)
	}
}

func TestProductService_Get_SeesRetiredProducts(t *testing.T) {
	svc, repo, _, _ := newProductService()

	p, _ := repo.Insert(context.Background(), &domain.Product{Name: "Tacos", Available: false})

	view, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("direct lookup must bypass the availability filter: %v", err)
	}
	if view.Available {
		t.Error("expected available=false")
	}
}

func TestProductService_Get_DanglingCategoryDegrades(t *testing.T) {
	svc, repo, _, _ := newProductService()

	p, _ := repo.Insert(context.Background(), &domain.Product{
		Name: "Tacos", Available: true, CategoryID: "cat_gone",
	})

	view, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Category != nil {
		t.Errorf("dangling reference should resolve to nothing, got %+v", view.Category)
	}
}

func TestProductService_Search_CaseInsensitive(t *testing.T) {
	svc, repo, _, _ := newProductService()

	_, _ = repo.Insert(context.Background(), &domain.Product{Name: "Laptop", Available: true})
	_, _ = repo.Insert(context.Background(), &domain.Product{Name: "Desktop", Available: true})

	for _, term := range []string{"lap", "LAP"} {
		views, err := svc.Search(context.Background(), term)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].Name != "Laptop" {
			t.Fatalf("search(%q): expected only Laptop, got %+v", term, views)
		}
	}
}

func TestProductService_Search_IncludesRetired(t *testing.T) {
	svc, repo, _, _ := newProductService()

	_, _ = repo.Insert(context.Background(), &domain.Product{Name: "Laptop", Available: false})

	views, err := svc.Search(context.Background(), "lap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("search must not filter by availability, got %d results", len(views))
	}
}

func TestProductService_Update_OverwritesAllMutableFields(t *testing.T) {
	svc, repo, _, _ := newProductService()

	p, _ := repo.Insert(context.Background(), &domain.Product{
		Name:        "Tacos",
		UnitPrice:   30,
		Description: "con todo",
		CategoryID:  "cat_1",
		Available:   true,
	})

	// only the name is "set"; every other field arrives zero-valued and
	// overwrites the stored one
	view, err := svc.Update(context.Background(), p.ID, ports.UpdateProductInput{Name: "Quesadillas"}, userPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Name != "Quesadillas" {
		t.Errorf("expected name Quesadillas, got %q", view.Name)
	}
	if view.Description != "" {
		t.Errorf("omitted description must be cleared, got %q", view.Description)
	}
	if view.UnitPrice != 0 {
		t.Errorf("omitted price must be cleared, got %v", view.UnitPrice)
	}
	if view.Available {
		t.Error("omitted availability must be cleared")
	}

	stored := repo.byID[p.ID]
	if stored.CategoryID != "" {
		t.Errorf("omitted category must be cleared, got %q", stored.CategoryID)
	}
	if stored.CreatedBy != p.CreatedBy {
		t.Error("creator must survive the overwrite")
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newProductService()

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{Name: "X"}, userPrincipal())
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Retire_ForcesUnavailable(t *testing.T) {
	svc, repo, _, _ := newProductService()

	p, _ := repo.Insert(context.Background(), &domain.Product{Name: "Tacos", Available: true})

	view, err := svc.Retire(context.Background(), p.ID, adminPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Available {
		t.Error("retire must set available=false")
	}

	// idempotent: a second retire lands on the same terminal state
	view, err = svc.Retire(context.Background(), p.ID, adminPrincipal())
	if err != nil {
		t.Fatalf("second retire must not error: %v", err)
	}
	if view.Available {
		t.Error("second retire must keep available=false")
	}
}

func TestProductService_Retire_RequiresAdmin(t *testing.T) {
	svc, repo, _, _ := newProductService()

	p, _ := repo.Insert(context.Background(), &domain.Product{Name: "Tacos", Available: true})

	_, err := svc.Retire(context.Background(), p.ID, userPrincipal())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !repo.byID[p.ID].Available {
		t.Error("denied retire must have no side effect")
	}
}
