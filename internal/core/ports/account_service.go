package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// CreateAccountInput carries the fields for a new account. Password is the
// plaintext credential; it is hashed by the service and never stored or
// echoed back.
type CreateAccountInput struct {
	DisplayName string
	Email       string
	Password    string
	Role        string
	AvatarRef   string
}

// AccountView is an account shaped for output. It never carries the
// password hash.
type AccountView struct {
	ID          string `json:"id"`
	DisplayName string `json:"nombre"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Active      bool   `json:"estado"`
	AvatarRef   string `json:"img,omitempty"`
}

// AccountListResult carries one page of active accounts plus the active
// total.
type AccountListResult struct {
	Items []AccountView
	Count int64
}

// AccountService defines the use-case operations on accounts. Create,
// Update and Retire are admin only.
type AccountService interface {
	List(ctx context.Context, offset, limit int64) (*AccountListResult, error)
	Create(ctx context.Context, in CreateAccountInput, p domain.Principal) (*AccountView, error)
	Update(ctx context.Context, id string, patch AccountUpdate, p domain.Principal) (*AccountView, error)
	// Retire sets Active to false; accounts are never physically deleted.
	Retire(ctx context.Context, id string, p domain.Principal) (*AccountView, error)
}
