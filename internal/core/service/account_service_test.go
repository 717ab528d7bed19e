package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

func newAccountService() (*AccountService, *stubAccountRepo) {
	repo := newStubAccountRepo()
	return NewAccountService(repo, discardLogger), repo
}

func accountInput(email string) ports.CreateAccountInput {
	return ports.CreateAccountInput{
		DisplayName: "Ana",
		Email:       email,
		Password:    "secreta123",
		Role:        domain.RoleUser,
	}
}

func TestAccountService_Create_RequiresAdmin(t *testing.T) {
	svc, repo := newAccountService()

	_, err := svc.Create(context.Background(), accountInput("ana@example.com"), userPrincipal())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("denied create must have no side effect")
	}
}

func TestAccountService_Create_HashesPassword(t *testing.T) {
	svc, repo := newAccountService()

	view, err := svc.Create(context.Background(), accountInput("ana@example.com"), adminPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Active {
		t.Error("new accounts must default to active")
	}

	stored := repo.byID[view.ID]
	if stored.PasswordHash == "secreta123" || stored.PasswordHash == "" {
		t.Fatal("plaintext must never be stored")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")) != nil {
		t.Error("stored hash must verify against the plaintext")
	}
}

func TestAccountService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newAccountService()

	if _, err := svc.Create(context.Background(), accountInput("ana@example.com"), adminPrincipal()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(context.Background(), accountInput("ana@example.com"), adminPrincipal())
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountService_Create_DefaultsRole(t *testing.T) {
	svc, _ := newAccountService()

	in := accountInput("ana@example.com")
	in.Role = ""
	view, err := svc.Create(context.Background(), in, adminPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Role != domain.RoleUser {
		t.Errorf("expected role USER, got %q", view.Role)
	}
}

func TestAccountService_Create_RejectsUnknownRole(t *testing.T) {
	svc, _ := newAccountService()

	in := accountInput("ana@example.com")
	in.Role = "SUPERUSER"
	_, err := svc.Create(context.Background(), in, adminPrincipal())
	var ve domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAccountService_List_ActiveOnlyWithoutHash(t *testing.T) {
	svc, repo := newAccountService()

	_, _ = repo.Insert(context.Background(), &domain.Account{
		DisplayName: "Ana", Email: "ana@example.com", PasswordHash: "hash", Active: true, Role: domain.RoleUser,
	})
	_, _ = repo.Insert(context.Background(), &domain.Account{
		DisplayName: "Beto", Email: "beto@example.com", PasswordHash: "hash", Active: false, Role: domain.RoleUser,
	})

	result, err := svc.List(context.Background(), 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("expected active count 1, got %d", result.Count)
	}
	if len(result.Items) != 1 || result.Items[0].Email != "ana@example.com" {
		t.Fatalf("deactivated account leaked into listing: %+v", result.Items)
	}
}

func TestAccountService_List_Defaults(t *testing.T) {
	svc, repo := newAccountService()

	for i := 0; i < 8; i++ {
		_, _ = repo.Insert(context.Background(), &domain.Account{
			DisplayName: "A", Email: string(rune('a'+i)) + "@example.com", Active: true, Role: domain.RoleUser,
		})
	}

	result, err := svc.List(context.Background(), -1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 5 {
		t.Errorf("expected default page of 5, got %d", len(result.Items))
	}
	if result.Count != 8 {
		t.Errorf("expected count 8, got %d", result.Count)
	}
}

func TestAccountService_Update_AllowListMerge(t *testing.T) {
	svc, repo := newAccountService()

	created, _ := repo.Insert(context.Background(), &domain.Account{
		DisplayName: "Ana", Email: "ana@example.com", PasswordHash: "hash", Active: true, Role: domain.RoleUser,
	})

	newName := "Ana Maria"
	newRole := domain.RoleAdmin
	view, err := svc.Update(context.Background(), created.ID, ports.AccountUpdate{
		DisplayName: &newName,
		Role:        &newRole,
	}, adminPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.DisplayName != "Ana Maria" || view.Role != domain.RoleAdmin {
		t.Errorf("patched fields not applied: %+v", view)
	}
	// untouched fields survive the merge
	if view.Email != "ana@example.com" || !view.Active {
		t.Errorf("merge must leave omitted fields alone: %+v", view)
	}
	// the credential is unreachable through this path
	if repo.byID[created.ID].PasswordHash != "hash" {
		t.Error("password hash must not change via update")
	}
}

func TestAccountService_Update_RequiresAdmin(t *testing.T) {
	svc, repo := newAccountService()

	created, _ := repo.Insert(context.Background(), &domain.Account{
		DisplayName: "Ana", Email: "ana@example.com", Active: true, Role: domain.RoleUser,
	})

	name := "X"
	_, err := svc.Update(context.Background(), created.ID, ports.AccountUpdate{DisplayName: &name}, userPrincipal())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAccountService_Retire_SoftDeletes(t *testing.T) {
	svc, repo := newAccountService()

	created, _ := repo.Insert(context.Background(), &domain.Account{
		DisplayName: "Ana", Email: "ana@example.com", Active: true, Role: domain.RoleUser,
	})

	view, err := svc.Retire(context.Background(), created.ID, adminPrincipal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Active {
		t.Error("retire must set active=false")
	}

	// record persists, just deactivated
	if repo.byID[created.ID] == nil {
		t.Fatal("account must not be physically deleted")
	}

	result, _ := svc.List(context.Background(), 0, 5)
	if len(result.Items) != 0 {
		t.Error("retired account must not appear in listings")
	}
}

func TestAccountService_Retire_NotFound(t *testing.T) {
	svc, _ := newAccountService()

	_, err := svc.Retire(context.Background(), "missing", adminPrincipal())
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
