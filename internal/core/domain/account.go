package domain

import "errors"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrDuplicateEmail = errors.New("email already registered")

// Account models a registered user of the directory. PasswordHash is never
// serialized; list projections drop it at the repository level as well.
type Account struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	DisplayName  string `json:"nombre" bson:"nombre"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
	Role         string `json:"role" bson:"role"`
	Active       bool   `json:"estado" bson:"estado"`
	AvatarRef    string `json:"img,omitempty" bson:"img,omitempty"`
}

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}
