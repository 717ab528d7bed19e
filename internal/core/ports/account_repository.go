package ports

import (
	"context"

	"github.com/mercadito/catalog-service/internal/core/domain"
)

// AccountUpdate is the allow-listed merge patch for account updates. Nil
// pointers leave the stored field untouched. The password hash is
// deliberately not reachable through this type.
type AccountUpdate struct {
	DisplayName *string
	Email       *string
	AvatarRef   *string
	Role        *string
	Active      *bool
}

// AccountRepository defines persistence operations for accounts.
// Email uniqueness is a unique index; Insert and Update translate the
// duplicate-key error to domain.ErrDuplicateEmail.
type AccountRepository interface {
	Insert(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Account, error)
	// FindActive returns active accounts, skip/limit paged. The stored
	// password hash is excluded by projection.
	FindActive(ctx context.Context, offset, limit int64) ([]*domain.Account, error)
	CountActive(ctx context.Context) (int64, error)
	// Update applies a merge patch and returns the updated record.
	Update(ctx context.Context, id string, patch AccountUpdate) (*domain.Account, error)
}
