package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

const (
	defaultListLimit = 5
	bcryptCost       = 10
)

type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// List returns one page of active accounts plus the active total.
// Deactivated accounts never appear here, and the projection excludes the
// password hash at the repository level.
func (s *AccountService) List(ctx context.Context, offset, limit int64) (*ports.AccountListResult, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	accounts, err := s.repo.FindActive(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ports.AccountView, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, toAccountView(a))
	}

	return &ports.AccountListResult{Items: items, Count: count}, nil
}

// Create registers a new account. Admin only. The plaintext credential is
// hashed with bcrypt and discarded; it is never persisted or echoed back.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput, p domain.Principal) (*ports.AccountView, error) {
	if err := domain.Authorize(p, domain.OpCreate, domain.KindAccount); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, domain.ErrValidation("nombre is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrValidation("email is required")
	}
	if in.Password == "" {
		return nil, domain.ErrValidation("password is required")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrValidation("role must be USER or ADMIN")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.Account{
		DisplayName:  name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		AvatarRef:    in.AvatarRef,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("created_by", p.AccountID).Msg("account created")

	view := toAccountView(created)
	return &view, nil
}

// Update applies an allow-listed merge patch. Admin only. The password is
// not reachable through this path, so the generic update can never
// overwrite a credential.
func (s *AccountService) Update(ctx context.Context, id string, patch ports.AccountUpdate, p domain.Principal) (*ports.AccountView, error) {
	if err := domain.Authorize(p, domain.OpUpdate, domain.KindAccount); err != nil {
		return nil, err
	}

	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return nil, domain.ErrValidation("role must be USER or ADMIN")
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	view := toAccountView(updated)
	return &view, nil
}

// Retire deactivates an account. Admin only; same soft-delete pattern as
// products, so the record survives for audit.
func (s *AccountService) Retire(ctx context.Context, id string, p domain.Principal) (*ports.AccountView, error) {
	if err := domain.Authorize(p, domain.OpRetire, domain.KindAccount); err != nil {
		return nil, err
	}

	inactive := false
	updated, err := s.repo.Update(ctx, id, ports.AccountUpdate{Active: &inactive})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Str("retired_by", p.AccountID).Msg("account retired")

	view := toAccountView(updated)
	return &view, nil
}

func toAccountView(a *domain.Account) ports.AccountView {
	return ports.AccountView{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		Role:        a.Role,
		Active:      a.Active,
		AvatarRef:   a.AvatarRef,
	}
}
