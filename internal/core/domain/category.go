package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrDuplicateCategory = errors.New("category name already exists")

// Category is a labeled grouping of products. CreatedBy is set once at
// creation and never changes; it is a weak reference, resolved only for
// display.
type Category struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"nombre" bson:"nombre"`
	CreatedBy string `json:"usuario,omitempty" bson:"usuario,omitempty"`
}
