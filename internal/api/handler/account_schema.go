package handler

import "github.com/mercadito/catalog-service/internal/core/ports"

type createAccountRequest struct {
	DisplayName string `json:"nombre"   validate:"required"`
	Email       string `json:"email"    validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role"     validate:"omitempty,oneof=USER ADMIN"`
	AvatarRef   string `json:"img"`
}

// updateAccountRequest is the allow-listed merge patch. Pointer fields
// distinguish "omitted" from "set to zero"; password is deliberately not
// bindable here.
type updateAccountRequest struct {
	DisplayName *string `json:"nombre"`
	Email       *string `json:"email"  validate:"omitempty,email"`
	AvatarRef   *string `json:"img"`
	Role        *string `json:"role"   validate:"omitempty,oneof=USER ADMIN"`
	Active      *bool   `json:"estado"`
}

type accountListResponse struct {
	OK       bool                `json:"ok"`
	Accounts []ports.AccountView `json:"usuarios"`
	Count    int64               `json:"count"`
}

type accountResponse struct {
	OK      bool              `json:"ok"`
	Account ports.AccountView `json:"usuario"`
}
