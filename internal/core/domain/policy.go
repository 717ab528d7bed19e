package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Operation names the four things a caller can do to a resource collection.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpRetire Operation = "retire"
)

// ResourceKind names the three directory collections.
type ResourceKind string

const (
	KindAccount  ResourceKind = "account"
	KindCategory ResourceKind = "category"
	KindProduct  ResourceKind = "product"
)

// adminOnly lists the operation/kind pairs restricted to administrators.
// Everything else requires only an authenticated principal.
var adminOnly = map[ResourceKind]map[Operation]bool{
	KindAccount: {
		OpCreate: true,
		OpUpdate: true,
		OpRetire: true,
	},
	KindCategory: {
		OpRetire: true,
	},
	KindProduct: {
		OpRetire: true,
	},
}

// Allowed is the stateless authorization gate. Services consult it before
// any storage mutation; a denial must produce no side effect.
func Allowed(role string, op Operation, kind ResourceKind) bool {
	if role == "" {
		return false
	}
	if adminOnly[kind][op] {
		return role == RoleAdmin
	}
	return true
}

// Authorize wraps Allowed with the sentinel error services return on denial.
func Authorize(p Principal, op Operation, kind ResourceKind) error {
	if !Allowed(p.Role, op, kind) {
		return ErrForbidden
	}
	return nil
}
